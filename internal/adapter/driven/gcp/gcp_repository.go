package gcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2/google"
	billingbudgets "google.golang.org/api/billingbudgets/v1beta1"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

// GCPRepositoryImpl implementa o GCPRepository com cache de clientes.
// Todos os clientes usam Application Default Credentials com escopos
// read-only; nenhum método altera estado remoto.
type GCPRepositoryImpl struct {
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewGCPRepository cria uma nova implementação do GCPRepository.
func NewGCPRepository() repository.GCPRepository {
	return &GCPRepositoryImpl{
		clientCache: make(map[string]interface{}),
	}
}

// VerifyCredentials confirma que há Application Default Credentials
// utilizáveis. Suporta GOOGLE_APPLICATION_CREDENTIALS, `gcloud auth
// application-default login` e service accounts em GCE/Cloud Run.
func (r *GCPRepositoryImpl) VerifyCredentials(ctx context.Context) error {
	_, err := google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
		compute.ComputeReadonlyScope,
		cloudbilling.CloudBillingScope,
	)
	if err != nil {
		return fmt.Errorf("no usable Google credentials: %w", err)
	}
	return nil
}

func (r *GCPRepositoryImpl) getServiceClient(ctx context.Context, service string) (interface{}, error) {
	r.mu.Lock()
	if client, ok := r.clientCache[service]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	var (
		client interface{}
		err    error
	)

	switch service {
	case "cloudresourcemanager":
		client, err = cloudresourcemanager.NewService(ctx,
			option.WithScopes(cloudresourcemanager.CloudPlatformReadOnlyScope))
	case "compute":
		client, err = compute.NewService(ctx,
			option.WithScopes(compute.ComputeReadonlyScope))
	case "container":
		client, err = container.NewService(ctx,
			option.WithScopes(container.CloudPlatformScope))
	case "storage":
		client, err = storage.NewService(ctx,
			option.WithScopes(storage.DevstorageReadOnlyScope))
	case "cloudbilling":
		client, err = cloudbilling.NewService(ctx,
			option.WithScopes(cloudbilling.CloudBillingScope))
	case "billingbudgets":
		client, err = billingbudgets.NewService(ctx,
			option.WithScopes(billingbudgets.CloudBillingScope))
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", service, err)
	}

	r.mu.Lock()
	r.clientCache[service] = client
	r.mu.Unlock()

	return client, nil
}

// ResolveProjectID determina o projeto alvo: argumento explícito, variáveis de
// ambiente do SDK, e por fim a configuração ativa do gcloud. A impossibilidade
// de resolver um projeto é o único erro fatal de coleta.
func (r *GCPRepositoryImpl) ResolveProjectID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, env := range []string{"CLOUDSDK_CORE_PROJECT", "GOOGLE_CLOUD_PROJECT", "GCP_PROJECT"} {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}

	if project := readGcloudActiveProject(); project != "" {
		return project, nil
	}

	return "", types.ErrNoProjectResolved
}

var gcloudProjectRegex = regexp.MustCompile(`(?m)^\s*project\s*=\s*(\S+)`)

// readGcloudActiveProject lê o projeto da configuração ativa do gcloud
// (~/.config/gcloud/configurations/config_<name>). Retorna vazio quando não
// há configuração legível.
func readGcloudActiveProject() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	gcloudDir := filepath.Join(homeDir, ".config", "gcloud")
	if custom := os.Getenv("CLOUDSDK_CONFIG"); custom != "" {
		gcloudDir = custom
	}

	active := "default"
	if data, err := os.ReadFile(filepath.Join(gcloudDir, "active_config")); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			active = name
		}
	}

	data, err := os.ReadFile(filepath.Join(gcloudDir, "configurations", "config_"+active))
	if err != nil {
		return ""
	}

	match := gcloudProjectRegex.FindSubmatch(data)
	if match == nil {
		return ""
	}
	return string(match[1])
}

func (r *GCPRepositoryImpl) GetProjectInfo(ctx context.Context, projectID string) (entity.ProjectInfo, error) {
	client, err := r.getServiceClient(ctx, "cloudresourcemanager")
	if err != nil {
		return entity.ProjectInfo{}, err
	}
	crm := client.(*cloudresourcemanager.Service)

	project, err := crm.Projects.Get(projectID).Context(ctx).Do()
	if err != nil {
		return entity.ProjectInfo{}, fmt.Errorf("error getting project %s: %w", projectID, err)
	}

	info := entity.ProjectInfo{
		ProjectID:      project.ProjectId,
		ProjectNumber:  project.ProjectNumber,
		DisplayName:    project.Name,
		LifecycleState: project.LifecycleState,
	}
	if created, err := time.Parse(time.RFC3339, project.CreateTime); err == nil {
		info.CreateTime = created
	}

	return info, nil
}

func (r *GCPRepositoryImpl) GetClusters(ctx context.Context, projectID string) ([]entity.ClusterDetail, error) {
	client, err := r.getServiceClient(ctx, "container")
	if err != nil {
		return nil, err
	}
	gke := client.(*container.Service)

	parent := fmt.Sprintf("projects/%s/locations/-", projectID)
	resp, err := gke.Projects.Locations.Clusters.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error listing GKE clusters: %w", err)
	}

	clusters := make([]entity.ClusterDetail, 0, len(resp.Clusters))
	for _, c := range resp.Clusters {
		detail := entity.ClusterDetail{
			Name:                c.Name,
			Location:            c.Location,
			ControlPlaneVersion: c.CurrentMasterVersion,
			NodeVersion:         c.CurrentNodeVersion,
			Status:              entity.ParseClusterStatus(c.Status),
			NodeCount:           c.CurrentNodeCount,
			Endpoint:            c.Endpoint,
		}
		if created, err := time.Parse(time.RFC3339, c.CreateTime); err == nil {
			detail.CreatedAt = created
		}
		clusters = append(clusters, detail)
	}

	return clusters, nil
}

func (r *GCPRepositoryImpl) GetInstanceSummary(ctx context.Context, projectID string) (entity.InstanceSummary, error) {
	client, err := r.getServiceClient(ctx, "compute")
	if err != nil {
		return nil, err
	}
	gce := client.(*compute.Service)

	summary := make(entity.InstanceSummary)
	err = gce.Instances.AggregatedList(projectID).Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for _, scoped := range page.Items {
			for _, instance := range scoped.Instances {
				summary[instance.Status]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing compute instances: %w", err)
	}

	return summary, nil
}

func (r *GCPRepositoryImpl) GetDiskSummary(ctx context.Context, projectID string) (entity.DiskSummary, error) {
	client, err := r.getServiceClient(ctx, "compute")
	if err != nil {
		return entity.DiskSummary{}, err
	}
	gce := client.(*compute.Service)

	var count, totalGB int64
	err = gce.Disks.AggregatedList(projectID).Pages(ctx, func(page *compute.DiskAggregatedList) error {
		for _, scoped := range page.Items {
			for _, disk := range scoped.Disks {
				count++
				totalGB += disk.SizeGb
			}
		}
		return nil
	})
	if err != nil {
		return entity.DiskSummary{}, fmt.Errorf("error listing disks: %w", err)
	}

	return entity.DiskSummary{
		Count:       entity.KnownCount(count),
		TotalSizeGB: totalGB,
		SizesKnown:  true,
	}, nil
}

func (r *GCPRepositoryImpl) GetNetworkCount(ctx context.Context, projectID string) (entity.Count, error) {
	client, err := r.getServiceClient(ctx, "compute")
	if err != nil {
		return entity.UnknownCount(), err
	}
	gce := client.(*compute.Service)

	var count int64
	err = gce.Networks.List(projectID).Pages(ctx, func(page *compute.NetworkList) error {
		count += int64(len(page.Items))
		return nil
	})
	if err != nil {
		return entity.UnknownCount(), fmt.Errorf("error listing VPC networks: %w", err)
	}

	return entity.KnownCount(count), nil
}

func (r *GCPRepositoryImpl) GetForwardingRuleCount(ctx context.Context, projectID string) (entity.Count, error) {
	client, err := r.getServiceClient(ctx, "compute")
	if err != nil {
		return entity.UnknownCount(), err
	}
	gce := client.(*compute.Service)

	// A lista agregada inclui regras regionais e globais.
	var count int64
	err = gce.ForwardingRules.AggregatedList(projectID).Pages(ctx, func(page *compute.ForwardingRuleAggregatedList) error {
		for _, scoped := range page.Items {
			count += int64(len(scoped.ForwardingRules))
		}
		return nil
	})
	if err != nil {
		return entity.UnknownCount(), fmt.Errorf("error listing forwarding rules: %w", err)
	}

	return entity.KnownCount(count), nil
}

func (r *GCPRepositoryImpl) GetBuckets(ctx context.Context, projectID string) ([]entity.BucketInfo, error) {
	client, err := r.getServiceClient(ctx, "storage")
	if err != nil {
		return nil, err
	}
	gcs := client.(*storage.Service)

	buckets := []entity.BucketInfo{}
	err = gcs.Buckets.List(projectID).Pages(ctx, func(page *storage.Buckets) error {
		for _, b := range page.Items {
			buckets = append(buckets, entity.BucketInfo{
				Name:         b.Name,
				Location:     b.Location,
				StorageClass: b.StorageClass,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing storage buckets: %w", err)
	}

	return buckets, nil
}

func (r *GCPRepositoryImpl) GetExternalIPs(ctx context.Context, projectID string) ([]entity.ExternalIP, error) {
	client, err := r.getServiceClient(ctx, "compute")
	if err != nil {
		return nil, err
	}
	gce := client.(*compute.Service)

	ips := []entity.ExternalIP{}
	err = gce.Instances.AggregatedList(projectID).Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for _, scoped := range page.Items {
			for _, instance := range scoped.Instances {
				for _, iface := range instance.NetworkInterfaces {
					for _, access := range iface.AccessConfigs {
						if access.NatIP != "" {
							ips = append(ips, entity.ExternalIP{
								InstanceName: instance.Name,
								Zone:         lastPathSegment(instance.Zone),
								Address:      access.NatIP,
							})
						}
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing external IPs: %w", err)
	}

	return ips, nil
}

func (r *GCPRepositoryImpl) GetBillingInfo(ctx context.Context, projectID string) (entity.BillingInfo, error) {
	client, err := r.getServiceClient(ctx, "cloudbilling")
	if err != nil {
		return entity.BillingInfo{}, err
	}
	cb := client.(*cloudbilling.APIService)

	projectBilling, err := cb.Projects.GetBillingInfo("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return entity.BillingInfo{}, fmt.Errorf("error getting billing info: %w", err)
	}

	info := entity.BillingInfo{
		AccountID:      strings.TrimPrefix(projectBilling.BillingAccountName, "billingAccounts/"),
		BillingEnabled: projectBilling.BillingEnabled,
	}

	if !info.HasAccount() {
		return info, nil
	}

	// O detalhe da conta é opcional; sem permissão mantemos só o ID.
	account, err := cb.BillingAccounts.Get(projectBilling.BillingAccountName).Context(ctx).Do()
	if err == nil {
		info.AccountDisplayName = account.DisplayName
		info.AccountOpen = account.Open
	}

	return info, nil
}

func (r *GCPRepositoryImpl) GetBudgets(ctx context.Context, billingAccountID string) ([]entity.Budget, error) {
	client, err := r.getServiceClient(ctx, "billingbudgets")
	if err != nil {
		return nil, err
	}
	bb := client.(*billingbudgets.Service)

	parent := "billingAccounts/" + billingAccountID
	resp, err := bb.BillingAccounts.Budgets.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error listing budgets for %s: %w", parent, err)
	}

	budgets := make([]entity.Budget, 0, len(resp.Budgets))
	for _, b := range resp.Budgets {
		budget := entity.Budget{DisplayName: b.DisplayName}

		if b.Amount != nil && b.Amount.SpecifiedAmount != nil {
			budget.AmountUnits = b.Amount.SpecifiedAmount.Units
			budget.CurrencyCode = b.Amount.SpecifiedAmount.CurrencyCode
		}
		if b.BudgetFilter != nil {
			budget.CalendarPeriod = b.BudgetFilter.CalendarPeriod
		}
		for _, rule := range b.ThresholdRules {
			budget.ThresholdRules = append(budget.ThresholdRules, entity.ThresholdRule{
				// A API usa fração do orçamento (0.5 = 50%).
				Percent: rule.ThresholdPercent * 100,
				Basis:   entity.ParseThresholdBasis(rule.SpendBasis),
			})
		}

		budgets = append(budgets, budget)
	}

	return budgets, nil
}

// lastPathSegment extrai o nome do recurso de uma URL da API do GCP,
// ex.: ".../zones/us-central1-a" → "us-central1-a".
func lastPathSegment(resourceURL string) string {
	if idx := strings.LastIndex(resourceURL, "/"); idx >= 0 {
		return resourceURL[idx+1:]
	}
	return resourceURL
}
