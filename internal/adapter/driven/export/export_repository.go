package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/pricing"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(data entity.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Project ID", "Project Name", "Billing Account",
		"GKE Clusters", "Compute Instances", "Disks",
		"VPC Networks", "Forwarding Rules", "Storage Buckets",
		"Monthly Cost (USD)", fmt.Sprintf("Monthly Cost (%s)", data.Rate.TargetCurrency),
		"Daily Cost (USD)", "Hourly Cost (USD)",
	}
	writer.Write(headers)

	record := []string{
		data.Project.ProjectID,
		data.Project.DisplayName,
		data.Billing.AccountID,
		fmt.Sprintf("%d", data.Counts.GKEClusters.Value),
		fmt.Sprintf("%d", data.Counts.ComputeInstances.Value),
		fmt.Sprintf("%d", data.Counts.Disks.Value),
		fmt.Sprintf("%d", data.Counts.VPCNetworks.Value),
		fmt.Sprintf("%d", data.Counts.ForwardingRules.Value),
		fmt.Sprintf("%d", data.Counts.StorageBuckets.Value),
		fmt.Sprintf("%.2f", data.Costs.TotalMonthly),
		fmt.Sprintf("%.2f", pricing.Convert(data.Costs.TotalMonthly, data.Rate.USDToTarget)),
		fmt.Sprintf("%.2f", data.Costs.TotalDaily),
		fmt.Sprintf("%.2f", data.Costs.TotalHourly),
	}
	writer.Write(record)

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(data entity.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(data entity.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	projectName := data.Project.DisplayName
	if projectName == "" {
		projectName = data.Project.ProjectID
	}
	if len(projectName) > 80 {
		projectName = projectName[:77] + "..."
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", projectName)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Project ID: %s", data.Project.ProjectID)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	inventoryStr := fmt.Sprintf(
		"GKE clusters: %d\nCompute instances: %d\nPersistent disks: %d\nVPC networks: %d\nForwarding rules: %d\nStorage buckets: %d",
		data.Counts.GKEClusters.Value,
		data.Counts.ComputeInstances.Value,
		data.Counts.Disks.Value,
		data.Counts.VPCNetworks.Value,
		data.Counts.ForwardingRules.Value,
		data.Counts.StorageBuckets.Value,
	)
	drawSection("Inventory", inventoryStr)

	clustersStr := ""
	for _, c := range data.Clusters {
		clustersStr += fmt.Sprintf("%s (%s): %s, %d node(s), control plane %s\n",
			c.Name, c.Location, c.Status, c.NodeCount, c.ControlPlaneVersion)
	}
	drawSection("GKE Clusters", strings.TrimSpace(clustersStr))

	currency := data.Rate.TargetCurrency
	costsStr := fmt.Sprintf(
		"Compute (monthly): $%.2f / %.2f %s\nDisks (monthly): $%.2f / %.2f %s\nLoad balancers (monthly): $%.2f / %.2f %s\nTotal (monthly): $%.2f / %.2f %s\nTotal (daily): $%.2f / %.2f %s\nTotal (hourly): $%.2f / %.2f %s",
		data.Costs.ComputeMonthly, pricing.Convert(data.Costs.ComputeMonthly, data.Rate.USDToTarget), currency,
		data.Costs.DiskMonthly, pricing.Convert(data.Costs.DiskMonthly, data.Rate.USDToTarget), currency,
		data.Costs.LBMonthly, pricing.Convert(data.Costs.LBMonthly, data.Rate.USDToTarget), currency,
		data.Costs.TotalMonthly, pricing.Convert(data.Costs.TotalMonthly, data.Rate.USDToTarget), currency,
		data.Costs.TotalDaily, pricing.Convert(data.Costs.TotalDaily, data.Rate.USDToTarget), currency,
		data.Costs.TotalHourly, pricing.Convert(data.Costs.TotalHourly, data.Rate.USDToTarget), currency,
	)
	drawSection("Estimated Costs", costsStr)

	if data.BurnDown.DaysSinceCreation >= 0 {
		burnStr := fmt.Sprintf("Project age: %d day(s)\nBurn rate: $%.2f/day",
			data.BurnDown.DaysSinceCreation, data.BurnDown.BurnRatePerDayUSD)
		if data.BurnDown.LikelyExpired {
			burnStr += "\nTrial status: likely expired"
		} else {
			burnStr += fmt.Sprintf("\nRemaining: %d day(s)\nProjected spend: $%.2f of $%.2f credit",
				data.BurnDown.DaysRemaining, data.BurnDown.ProjectedSpendUSD, data.BurnDown.CreditUSD)
		}
		drawSection("Free Trial Burn-Down", burnStr)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by GCP FinOps Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
