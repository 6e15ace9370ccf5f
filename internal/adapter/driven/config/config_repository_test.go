package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
project: my-sandbox
currency: EUR
skip_workloads: true
pricing:
  per_node_month_usd: 30.0
  trial_days: 60
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "my-sandbox", cfg.Project)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.SkipWorkloads)
	assert.Equal(t, 30.0, cfg.Pricing.PerNodeMonthUSD)
	assert.Equal(t, 60, cfg.Pricing.TrialDays)
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
project = "my-sandbox"
currency = "INR"

[pricing]
per_gb_month_usd = 0.05
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "my-sandbox", cfg.Project)
	assert.Equal(t, "INR", cfg.Currency)
	assert.Equal(t, 0.05, cfg.Pricing.PerGBMonthUSD)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeConfig(t, "config.json",
		`{"project":"my-sandbox","report_type":["csv","pdf"]}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "my-sandbox", cfg.Project)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFile_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", "project=x")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.Error(t, err)
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
