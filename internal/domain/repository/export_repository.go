package repository

import (
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(data entity.ReportData, filename string, outputDir string) (string, error)
	ExportToJSON(data entity.ReportData, filename string, outputDir string) (string, error)
	ExportToPDF(data entity.ReportData, filename string, outputDir string) (string, error)
}
