package repository

import (
	"context"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

// GCPRepository defines the interface for the read-only inventory queries.
// Cada método emite uma única consulta; falhas degradáveis são tratadas pelo
// chamador substituindo um sentinel, nunca abortando o relatório inteiro.
type GCPRepository interface {
	// Project Operations
	ResolveProjectID(explicit string) (string, error)
	VerifyCredentials(ctx context.Context) error
	GetProjectInfo(ctx context.Context, projectID string) (entity.ProjectInfo, error)

	// Inventory Operations
	GetClusters(ctx context.Context, projectID string) ([]entity.ClusterDetail, error)
	GetInstanceSummary(ctx context.Context, projectID string) (entity.InstanceSummary, error)
	GetDiskSummary(ctx context.Context, projectID string) (entity.DiskSummary, error)
	GetNetworkCount(ctx context.Context, projectID string) (entity.Count, error)
	GetForwardingRuleCount(ctx context.Context, projectID string) (entity.Count, error)
	GetBuckets(ctx context.Context, projectID string) ([]entity.BucketInfo, error)
	GetExternalIPs(ctx context.Context, projectID string) ([]entity.ExternalIP, error)

	// Billing Operations
	GetBillingInfo(ctx context.Context, projectID string) (entity.BillingInfo, error)
	GetBudgets(ctx context.Context, billingAccountID string) ([]entity.Budget, error)
}
