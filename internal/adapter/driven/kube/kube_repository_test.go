package kube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestSummarize(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "default"},
			Status:     corev1.PodStatus{Phase: corev1.PodRunning},
		},
		&corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{Name: "web-2", Namespace: "default"},
			Status:     corev1.PodStatus{Phase: corev1.PodPending},
		},
		&corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{Name: "worker-1", Namespace: "jobs"},
			Status:     corev1.PodStatus{Phase: corev1.PodRunning},
		},
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "default"},
		},
		&corev1.Service{
			ObjectMeta: metav1.ObjectMeta{Name: "web-svc", Namespace: "default"},
		},
		&corev1.PersistentVolumeClaim{
			ObjectMeta: metav1.ObjectMeta{Name: "data", Namespace: "jobs"},
		},
	)

	summary, err := summarize(context.Background(), clientset)
	require.NoError(t, err)

	assert.True(t, summary.Collected)
	assert.Equal(t, int64(3), summary.Pods)
	assert.Equal(t, int64(2), summary.RunningPods)
	assert.Equal(t, int64(1), summary.Deployments)
	assert.Equal(t, int64(1), summary.Services)
	assert.Equal(t, int64(1), summary.PVCs)
}

func TestSummarizeEmptyCluster(t *testing.T) {
	summary, err := summarize(context.Background(), fake.NewSimpleClientset())
	require.NoError(t, err)

	assert.True(t, summary.Collected)
	assert.Zero(t, summary.Pods)
	assert.Zero(t, summary.RunningPods)
}

func TestResolveKubeconfigPrecedence(t *testing.T) {
	t.Setenv("KUBECONFIG", "/tmp/from-env")

	explicit := &KubeRepositoryImpl{kubeconfigPath: "/tmp/explicit"}
	assert.Equal(t, "/tmp/explicit", explicit.resolveKubeconfig())

	fromEnv := &KubeRepositoryImpl{}
	assert.Equal(t, "/tmp/from-env", fromEnv.resolveKubeconfig())
}

func TestGetWorkloadSummaryMissingKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	repo := NewKubeRepository("")
	_, err := repo.GetWorkloadSummary(context.Background())
	require.Error(t, err)
}
