package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/pricing"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

const notAvailable = "not available"

// ReportUseCase orquestra a execução do relatório: coleta → modelo de custo →
// renderização. Falhas de coleta degradam para sentinels; apenas a resolução
// do projeto e a busca da taxa de câmbio são fatais.
type ReportUseCase struct {
	gcpRepo    repository.GCPRepository
	kubeRepo   repository.KubeRepository
	ratesRepo  repository.RatesRepository
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	gcpRepo repository.GCPRepository,
	kubeRepo repository.KubeRepository,
	ratesRepo repository.RatesRepository,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		gcpRepo:    gcpRepo,
		kubeRepo:   kubeRepo,
		ratesRepo:  ratesRepo,
		configRepo: configRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// RunReport executa a funcionalidade principal do relatório.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado
	prices := pricing.DefaultPriceTable()
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
		prices = pricing.TableFromConfig(cfg.Pricing)
	}

	if args.Currency == "" {
		args.Currency = "INR"
	}

	// Resolve o projeto alvo — único erro fatal de coleta
	projectID, err := uc.gcpRepo.ResolveProjectID(args.Project)
	if err != nil {
		return err
	}

	// Busca a taxa de câmbio antes de imprimir qualquer seção: sem taxa não
	// há relatório, os valores convertidos aparecem em todas as seções de custo.
	rate, err := uc.ratesRepo.GetUSDRate(ctx, args.Currency)
	if err != nil {
		return err
	}

	if err := uc.gcpRepo.VerifyCredentials(ctx); err != nil {
		uc.console.LogWarning("Google credentials unavailable, inventory queries will degrade: %s", err)
	}

	status := uc.console.Status(fmt.Sprintf("Collecting inventory for project %s...", projectID))
	data := uc.collect(ctx, projectID, args, status)
	status.Stop()

	// Deriva os custos a partir das contagens coletadas
	engine := pricing.NewEngine(prices)
	data.Rate = rate
	data.Costs = engine.Breakdown(data.Counts, data.Disks)
	data.BurnDown = engine.BurnDown(data.Project.DaysSinceCreation(time.Now()), data.Costs.TotalDaily)

	uc.render(data)
	uc.export(data, args)

	return nil
}

// collect executa as consultas de inventário em sequência, substituindo
// sentinels nos pontos de falha. Nenhum erro de coletor sai deste método.
func (uc *ReportUseCase) collect(
	ctx context.Context,
	projectID string,
	args *types.CLIArgs,
	status types.StatusHandle,
) entity.ReportData {
	data := entity.ReportData{
		Project: entity.ProjectInfo{ProjectID: projectID},
	}

	progress := uc.console.ProgressWithTotal(10)
	defer progress.Stop()

	step := func(name string) {
		status.Update(fmt.Sprintf("Querying %s for %s...", name, projectID))
	}

	step("project metadata")
	if info, err := uc.gcpRepo.GetProjectInfo(ctx, projectID); err != nil {
		uc.console.LogWarning("Project metadata unavailable: %s", err)
	} else {
		data.Project = info
	}
	progress.Increment()

	step("billing info")
	if billing, err := uc.gcpRepo.GetBillingInfo(ctx, projectID); err != nil {
		uc.console.LogWarning("Billing info unavailable: %s", err)
	} else {
		data.Billing = billing
	}
	progress.Increment()

	step("budgets")
	// Orçamentos dependem de uma conta de billing resolvida
	if data.Billing.HasAccount() {
		if budgets, err := uc.gcpRepo.GetBudgets(ctx, data.Billing.AccountID); err != nil {
			uc.console.LogWarning("Budget list unavailable: %s", err)
		} else {
			data.Budgets = budgets
		}
	}
	progress.Increment()

	step("GKE clusters")
	if clusters, err := uc.gcpRepo.GetClusters(ctx, projectID); err != nil {
		uc.console.LogWarning("GKE cluster list unavailable: %s", err)
		data.Counts.GKEClusters = entity.UnknownCount()
	} else {
		data.Clusters = clusters
		data.Counts.GKEClusters = entity.KnownCount(int64(len(clusters)))
	}
	progress.Increment()

	step("compute instances")
	if instances, err := uc.gcpRepo.GetInstanceSummary(ctx, projectID); err != nil {
		uc.console.LogWarning("Compute instance list unavailable: %s", err)
		data.Counts.ComputeInstances = entity.UnknownCount()
	} else {
		data.Instances = instances
		data.Counts.ComputeInstances = entity.KnownCount(instances.Total())
	}
	progress.Increment()

	step("persistent disks")
	if disks, err := uc.gcpRepo.GetDiskSummary(ctx, projectID); err != nil {
		uc.console.LogWarning("Disk list unavailable: %s", err)
		data.Disks = entity.DiskSummary{Count: entity.UnknownCount()}
	} else {
		data.Disks = disks
	}
	data.Counts.Disks = data.Disks.Count
	progress.Increment()

	step("VPC networks")
	if networks, err := uc.gcpRepo.GetNetworkCount(ctx, projectID); err != nil {
		uc.console.LogWarning("VPC network list unavailable: %s", err)
		data.Counts.VPCNetworks = entity.UnknownCount()
	} else {
		data.Counts.VPCNetworks = networks
	}
	progress.Increment()

	step("forwarding rules")
	if rules, err := uc.gcpRepo.GetForwardingRuleCount(ctx, projectID); err != nil {
		uc.console.LogWarning("Forwarding rule list unavailable: %s", err)
		data.Counts.ForwardingRules = entity.UnknownCount()
	} else {
		data.Counts.ForwardingRules = rules
	}
	progress.Increment()

	step("storage buckets")
	if buckets, err := uc.gcpRepo.GetBuckets(ctx, projectID); err != nil {
		uc.console.LogWarning("Storage bucket list unavailable: %s", err)
		data.Counts.StorageBuckets = entity.UnknownCount()
	} else {
		data.Buckets = buckets
		data.Counts.StorageBuckets = entity.KnownCount(int64(len(buckets)))
	}
	if ips, err := uc.gcpRepo.GetExternalIPs(ctx, projectID); err != nil {
		uc.console.LogWarning("External IP list unavailable: %s", err)
	} else {
		data.ExternalIPs = ips
	}
	progress.Increment()

	step("cluster workloads")
	if !args.SkipWorkloads {
		if workloads, err := uc.kubeRepo.GetWorkloadSummary(ctx); err != nil {
			uc.console.LogWarning("Cluster workloads unavailable: %s", err)
		} else {
			data.Workloads = workloads
		}
	}
	progress.Increment()

	return data
}

// render emite as seções do relatório na ordem fixa, single-pass.
func (uc *ReportUseCase) render(data entity.ReportData) {
	uc.renderHeader(data)
	uc.renderResourceCounts(data)
	uc.renderClusters(data.Clusters)
	uc.renderNetworkStorage(data)
	uc.renderWorkloads(data.Workloads)
	uc.renderUtilization(data)
	uc.renderCosts(data)
	uc.renderBurnDown(data.BurnDown, data.Rate)
	uc.renderAccessGuide(data)
}

func (uc *ReportUseCase) section(title string) {
	uc.console.Printf("\n%s\n", pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprintf("── %s ──", title))
}

func (uc *ReportUseCase) renderHeader(data entity.ReportData) {
	uc.section("Project")

	name := data.Project.DisplayName
	if name == "" {
		name = notAvailable
	}
	uc.console.Printf("  Project:  %s (%s)\n", pterm.FgMagenta.Sprint(data.Project.ProjectID), name)

	if data.Project.ProjectNumber > 0 {
		uc.console.Printf("  Number:   %d\n", data.Project.ProjectNumber)
	} else {
		uc.console.Printf("  Number:   %s\n", notAvailable)
	}

	if !data.Project.CreateTime.IsZero() {
		uc.console.Printf("  Created:  %s\n", data.Project.CreateTime.Format("2006-01-02"))
	} else {
		uc.console.Printf("  Created:  %s\n", notAvailable)
	}

	if data.Project.LifecycleState != "" {
		uc.console.Printf("  State:    %s\n", data.Project.LifecycleState)
	}

	if data.Billing.HasAccount() {
		accountName := data.Billing.AccountDisplayName
		if accountName == "" {
			accountName = data.Billing.AccountID
		}
		state := pterm.FgGreen.Sprint("enabled")
		if !data.Billing.BillingEnabled {
			state = pterm.FgYellow.Sprint("disabled")
		}
		open := "open"
		if !data.Billing.AccountOpen {
			open = "closed"
		}
		uc.console.Printf("  Billing:  %s (%s, account %s)\n", accountName, state, open)
	} else {
		uc.console.Printf("  Billing:  %s\n", pterm.FgYellow.Sprint("no billing account linked"))
	}

	if len(data.Budgets) == 0 {
		uc.console.Printf("  Budgets:  none\n")
		return
	}
	for _, b := range data.Budgets {
		rules := make([]string, 0, len(b.ThresholdRules))
		for _, rule := range b.ThresholdRules {
			rules = append(rules, fmt.Sprintf("%.0f%% %s", rule.Percent, strings.ToLower(string(rule.Basis))))
		}
		ruleText := ""
		if len(rules) > 0 {
			ruleText = fmt.Sprintf(" [alerts: %s]", strings.Join(rules, ", "))
		}
		period := b.CalendarPeriod
		if period == "" {
			period = "MONTH"
		}
		uc.console.Printf("  Budgets:  %s — %d %s per %s%s\n",
			b.DisplayName, b.AmountUnits, b.CurrencyCode, strings.ToLower(period), ruleText)
	}
}

func (uc *ReportUseCase) renderResourceCounts(data entity.ReportData) {
	uc.section("Resource Counts")

	table := uc.console.CreateTable()
	table.AddColumn("Resource")
	table.AddColumn("Count")

	table.AddRow("GKE clusters", formatCount(data.Counts.GKEClusters))
	table.AddRow("Compute instances", formatCount(data.Counts.ComputeInstances))
	table.AddRow("Persistent disks", formatCount(data.Counts.Disks))
	table.AddRow("VPC networks", formatCount(data.Counts.VPCNetworks))
	table.AddRow("Load balancers (forwarding rules)", formatCount(data.Counts.ForwardingRules))
	table.AddRow("Storage buckets", formatCount(data.Counts.StorageBuckets))

	uc.console.Print(table.Render())
}

func (uc *ReportUseCase) renderClusters(clusters []entity.ClusterDetail) {
	uc.section("GKE Clusters")

	if len(clusters) == 0 {
		uc.console.Printf("  %s\n", "no clusters found")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Name")
	table.AddColumn("Location")
	table.AddColumn("Status")
	table.AddColumn("Nodes")
	table.AddColumn("Control Plane")
	table.AddColumn("Node Version")
	table.AddColumn("Created")

	for _, c := range clusters {
		created := notAvailable
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format("2006-01-02")
		}
		table.AddRow(
			pterm.FgMagenta.Sprint(c.Name),
			c.Location,
			formatClusterStatus(c.Status),
			fmt.Sprintf("%d", c.NodeCount),
			c.ControlPlaneVersion,
			c.NodeVersion,
			created,
		)
	}

	uc.console.Print(table.Render())
}

func (uc *ReportUseCase) renderNetworkStorage(data entity.ReportData) {
	uc.section("Network & Storage")

	uc.console.Printf("  VPC networks:     %s\n", formatCount(data.Counts.VPCNetworks))
	uc.console.Printf("  Forwarding rules: %s\n", formatCount(data.Counts.ForwardingRules))

	if data.Disks.Count.Known {
		size := notAvailable
		if data.Disks.SizesKnown {
			size = fmt.Sprintf("%d GB total", data.Disks.TotalSizeGB)
		}
		uc.console.Printf("  Disks:            %d (%s)\n", data.Disks.Count.Value, size)
	} else {
		uc.console.Printf("  Disks:            0 (%s)\n", notAvailable)
	}

	if len(data.Buckets) == 0 {
		uc.console.Printf("  Buckets:          %s\n", formatCount(data.Counts.StorageBuckets))
		return
	}
	for _, b := range data.Buckets {
		uc.console.Printf("  Bucket:           %s (%s, %s)\n", b.Name, b.Location, b.StorageClass)
	}
}

func (uc *ReportUseCase) renderWorkloads(workloads entity.WorkloadSummary) {
	uc.section("Cluster Workloads")

	if !workloads.Collected {
		uc.console.Printf("  %s\n", notAvailable)
		return
	}

	uc.console.Printf("  Pods:        %d (%s running)\n", workloads.Pods, pterm.FgGreen.Sprintf("%d", workloads.RunningPods))
	uc.console.Printf("  Deployments: %d\n", workloads.Deployments)
	uc.console.Printf("  Services:    %d\n", workloads.Services)
	uc.console.Printf("  PVCs:        %d\n", workloads.PVCs)
}

func (uc *ReportUseCase) renderUtilization(data entity.ReportData) {
	uc.section("Utilization Summary")

	if len(data.Instances) == 0 {
		uc.console.Printf("  Instances: 0\n")
	} else {
		parts := make([]string, 0, len(data.Instances))
		for state, count := range data.Instances {
			if count == 0 {
				continue
			}
			switch state {
			case "RUNNING":
				parts = append(parts, fmt.Sprintf("%s: %d", pterm.FgGreen.Sprint(state), count))
			case "TERMINATED", "STOPPING", "SUSPENDED":
				parts = append(parts, fmt.Sprintf("%s: %d", pterm.FgYellow.Sprint(state), count))
			default:
				parts = append(parts, fmt.Sprintf("%s: %d", pterm.FgCyan.Sprint(state), count))
			}
		}
		uc.console.Printf("  Instances: %s\n", strings.Join(parts, ", "))
	}

	var nodes int64
	for _, c := range data.Clusters {
		nodes += c.NodeCount
	}
	uc.console.Printf("  GKE nodes: %d across %s cluster(s)\n", nodes, formatCount(data.Counts.GKEClusters))
}

func (uc *ReportUseCase) renderCosts(data entity.ReportData) {
	uc.section(fmt.Sprintf("Estimated Costs (USD / %s @ %.2f)", data.Rate.TargetCurrency, data.Rate.USDToTarget))

	table := uc.console.CreateTable()
	table.AddColumn("Item")
	table.AddColumn("USD")
	table.AddColumn(data.Rate.TargetCurrency)

	row := func(name string, usd float64) {
		table.AddRow(name,
			fmt.Sprintf("%.2f", usd),
			fmt.Sprintf("%.2f", pricing.Convert(usd, data.Rate.USDToTarget)))
	}

	row("Compute (monthly)", data.Costs.ComputeMonthly)
	row("Disks (monthly)", data.Costs.DiskMonthly)
	row("Load balancers (monthly)", data.Costs.LBMonthly)
	row("Total (monthly)", data.Costs.TotalMonthly)
	row("Total (daily)", data.Costs.TotalDaily)
	row("Total (hourly)", data.Costs.TotalHourly)

	uc.console.Print(table.Render())
	uc.console.Printf("  %s\n", pterm.FgGray.Sprint("Bucket storage and network egress are not estimated."))
}

func (uc *ReportUseCase) renderBurnDown(bd entity.TrialBurnDown, rate entity.ExchangeRate) {
	uc.section("Free Trial Burn-Down")

	if bd.DaysSinceCreation < 0 {
		uc.console.Printf("  Project age unknown, burn-down %s\n", notAvailable)
		return
	}

	uc.console.Printf("  Project age:    %d day(s)\n", bd.DaysSinceCreation)

	if bd.LikelyExpired {
		uc.console.Printf("  Trial status:   %s\n", pterm.FgRed.Sprint("likely expired"))
	} else {
		uc.console.Printf("  Remaining:      %d day(s) / %d hour(s)\n", bd.DaysRemaining, bd.HoursRemaining)
	}

	uc.console.DisplayBurnDownBar(bd.DaysRemaining, bd.TrialDays)

	uc.console.Printf("  Burn rate:      %.2f USD/day (%.2f %s/day)\n",
		bd.BurnRatePerDayUSD, pricing.Convert(bd.BurnRatePerDayUSD, rate.USDToTarget), rate.TargetCurrency)

	if !bd.LikelyExpired {
		uc.console.Printf("  Projected:      %.2f USD of %.2f USD credit by trial end\n",
			bd.ProjectedSpendUSD, bd.CreditUSD)
		if bd.ProjectedSpendUSD > bd.CreditUSD {
			uc.console.Printf("  %s\n", pterm.FgRed.Sprint("Projected spend exceeds the trial credit."))
		}
	}
}

func (uc *ReportUseCase) renderAccessGuide(data entity.ReportData) {
	uc.section("Access Guide")

	if len(data.ExternalIPs) == 0 {
		uc.console.Printf("  External IPs: none\n")
	}
	for _, ip := range data.ExternalIPs {
		uc.console.Printf("  External IP:  %s → %s (%s)\n",
			pterm.FgCyan.Sprint(ip.Address), ip.InstanceName, ip.Zone)
		uc.console.Printf("                gcloud compute ssh %s --zone %s\n", ip.InstanceName, ip.Zone)
	}

	for _, c := range data.Clusters {
		uc.console.Printf("  Cluster:      gcloud container clusters get-credentials %s --location %s\n",
			c.Name, c.Location)
		uc.console.Printf("                kubectl get nodes\n")
	}

	project := data.Project.ProjectID
	uc.console.Printf("  Console:      https://console.cloud.google.com/home/dashboard?project=%s\n", project)
	uc.console.Printf("  Billing:      https://console.cloud.google.com/billing?project=%s\n", project)
	if len(data.Clusters) > 0 {
		uc.console.Printf("  GKE:          https://console.cloud.google.com/kubernetes/list?project=%s\n", project)
	}
}

// export grava os relatórios solicitados via --report-name/--report-type.
func (uc *ReportUseCase) export(data entity.ReportData, args *types.CLIArgs) {
	if args.ReportName == "" {
		return
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}

// mergeConfig aplica valores do arquivo de configuração aos argumentos não
// informados na linha de comando.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Project == "" {
		args.Project = cfg.Project
	}
	if args.Currency == "" {
		args.Currency = cfg.Currency
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if cfg.SkipWorkloads {
		args.SkipWorkloads = true
	}
}

// formatCount imprime "0" tanto para zero confirmado quanto para desconhecido,
// preservando o comportamento visível; a distinção fica nos avisos de coleta.
func formatCount(c entity.Count) string {
	return fmt.Sprintf("%d", c.Value)
}

func formatClusterStatus(status entity.ClusterStatus) string {
	switch status {
	case entity.ClusterStatusRunning:
		return pterm.FgGreen.Sprint(string(status))
	case entity.ClusterStatusError:
		return pterm.FgRed.Sprint(string(status))
	case entity.ClusterStatusUnknown:
		return pterm.FgYellow.Sprint(string(status))
	default:
		return pterm.FgCyan.Sprint(string(status))
	}
}
