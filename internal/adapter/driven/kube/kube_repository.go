package kube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/repository"
)

// KubeRepositoryImpl consulta o cluster apontado pelo kubeconfig ativo para o
// resumo de workloads. A seção é opcional: qualquer falha (sem kubeconfig,
// cluster inalcançável, sem permissão) degrada para "not available".
type KubeRepositoryImpl struct {
	kubeconfigPath string
}

// NewKubeRepository cria uma nova implementação do KubeRepository.
// kubeconfigPath vazio usa $KUBECONFIG ou ~/.kube/config.
func NewKubeRepository(kubeconfigPath string) repository.KubeRepository {
	return &KubeRepositoryImpl{kubeconfigPath: kubeconfigPath}
}

func (r *KubeRepositoryImpl) resolveKubeconfig() string {
	if r.kubeconfigPath != "" {
		return r.kubeconfigPath
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".kube", "config")
}

// GetWorkloadSummary conta pods, deployments, services e PVCs em todos os
// namespaces do cluster ativo.
func (r *KubeRepositoryImpl) GetWorkloadSummary(ctx context.Context) (entity.WorkloadSummary, error) {
	path := r.resolveKubeconfig()
	if path == "" {
		return entity.WorkloadSummary{}, fmt.Errorf("no kubeconfig available")
	}

	restCfg, err := clientcmd.BuildConfigFromFlags("", path)
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to load kubeconfig %s: %w", path, err)
	}

	clientset, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return summarize(ctx, clientset)
}

func summarize(ctx context.Context, clientset kubernetes.Interface) (entity.WorkloadSummary, error) {
	summary := entity.WorkloadSummary{}

	pods, err := clientset.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to list pods: %w", err)
	}
	summary.Pods = int64(len(pods.Items))
	for _, pod := range pods.Items {
		if pod.Status.Phase == corev1.PodRunning {
			summary.RunningPods++
		}
	}

	deployments, err := clientset.AppsV1().Deployments(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to list deployments: %w", err)
	}
	summary.Deployments = int64(len(deployments.Items))

	services, err := clientset.CoreV1().Services(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to list services: %w", err)
	}
	summary.Services = int64(len(services.Items))

	pvcs, err := clientset.CoreV1().PersistentVolumeClaims(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return entity.WorkloadSummary{}, fmt.Errorf("failed to list persistent volume claims: %w", err)
	}
	summary.PVCs = int64(len(pvcs.Items))

	summary.Collected = true
	return summary, nil
}
