package repository

import (
	"context"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

// KubeRepository abstrai a consulta de workloads do cluster apontado pelo
// kubeconfig ativo. É inteiramente opcional: qualquer erro degrada a seção
// de workloads para "not available".
type KubeRepository interface {
	GetWorkloadSummary(ctx context.Context) (entity.WorkloadSummary, error)
}
