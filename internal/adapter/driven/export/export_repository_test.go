package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

func sampleReportData() entity.ReportData {
	return entity.ReportData{
		Project: entity.ProjectInfo{
			ProjectID:     "demo-project",
			ProjectNumber: 123456,
			DisplayName:   "Demo Project",
			CreateTime:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Billing: entity.BillingInfo{AccountID: "000000-AAAAAA-BBBBBB", BillingEnabled: true},
		Counts: entity.ResourceCounts{
			GKEClusters:      entity.KnownCount(1),
			ComputeInstances: entity.KnownCount(2),
			Disks:            entity.KnownCount(1),
			VPCNetworks:      entity.KnownCount(1),
			ForwardingRules:  entity.KnownCount(1),
			StorageBuckets:   entity.KnownCount(1),
		},
		Clusters: []entity.ClusterDetail{
			{Name: "demo-cluster", Location: "us-central1", Status: entity.ClusterStatusRunning, NodeCount: 2, ControlPlaneVersion: "1.30.5-gke.100"},
		},
		Rate: entity.ExchangeRate{TargetCurrency: "INR", USDToTarget: 84.50},
		Costs: entity.CostBreakdown{
			ComputeMonthly: 49.00,
			DiskMonthly:    2.00,
			LBMonthly:      18.00,
			TotalMonthly:   69.00,
			TotalDaily:     2.30,
			TotalHourly:    0.0958,
		},
		BurnDown: entity.TrialBurnDown{
			TrialDays:         90,
			DaysSinceCreation: 10,
			DaysRemaining:     80,
			BurnRatePerDayUSD: 2.30,
			CreditUSD:         300.00,
			ProjectedSpendUSD: 207.00,
		},
	}
}

func TestExportToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToCSV(sampleReportData(), "report", dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one data row")

	assert.Equal(t, "Project ID", records[0][0])
	assert.Contains(t, records[0], "Monthly Cost (INR)")
	assert.Equal(t, "demo-project", records[1][0])
	assert.Contains(t, records[1], "69.00")
	// 69.00 × 84.50
	assert.Contains(t, records[1], "5830.50")
}

func TestExportToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToJSON(sampleReportData(), "report", dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ReportData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "demo-project", decoded.Project.ProjectID)
	assert.Equal(t, int64(2), decoded.Counts.ComputeInstances.Value)
	assert.Equal(t, 69.00, decoded.Costs.TotalMonthly)
}

func TestExportToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToPDF(sampleReportData(), "report", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, ".pdf", filepath.Ext(path))
}

func TestGenerateFilenameCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := generateFilename("report", dir, "csv")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	_, err = os.Stat(dir)
	require.NoError(t, err)
}
