package gcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

func clearProjectEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"CLOUDSDK_CORE_PROJECT", "GOOGLE_CLOUD_PROJECT", "GCP_PROJECT"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestResolveProjectID_ExplicitWins(t *testing.T) {
	clearProjectEnv(t)
	t.Setenv("CLOUDSDK_CORE_PROJECT", "env-project")

	repo := NewGCPRepository()
	got, err := repo.ResolveProjectID("explicit-project")

	require.NoError(t, err)
	assert.Equal(t, "explicit-project", got)
}

func TestResolveProjectID_FromEnvironment(t *testing.T) {
	clearProjectEnv(t)
	t.Setenv("GOOGLE_CLOUD_PROJECT", "env-project")
	t.Setenv("CLOUDSDK_CONFIG", t.TempDir())

	repo := NewGCPRepository()
	got, err := repo.ResolveProjectID("")

	require.NoError(t, err)
	assert.Equal(t, "env-project", got)
}

func TestResolveProjectID_FromGcloudConfig(t *testing.T) {
	clearProjectEnv(t)

	gcloudDir := t.TempDir()
	t.Setenv("CLOUDSDK_CONFIG", gcloudDir)

	require.NoError(t, os.WriteFile(filepath.Join(gcloudDir, "active_config"), []byte("work\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(gcloudDir, "configurations"), 0o755))
	config := "[core]\naccount = dev@example.com\nproject = my-sandbox\n"
	require.NoError(t, os.WriteFile(filepath.Join(gcloudDir, "configurations", "config_work"), []byte(config), 0o644))

	repo := NewGCPRepository()
	got, err := repo.ResolveProjectID("")

	require.NoError(t, err)
	assert.Equal(t, "my-sandbox", got)
}

func TestResolveProjectID_NoProjectAnywhere(t *testing.T) {
	clearProjectEnv(t)
	t.Setenv("CLOUDSDK_CONFIG", t.TempDir())

	repo := NewGCPRepository()
	_, err := repo.ResolveProjectID("")

	assert.ErrorIs(t, err, types.ErrNoProjectResolved)
}

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a", "us-central1-a"},
		{"us-central1-a", "us-central1-a"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, lastPathSegment(tc.in))
	}
}
