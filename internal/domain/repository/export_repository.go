package repository

import (
	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(analysis entity.CostAnalysis, filename string, outputDir string) (string, error)
	ExportToJSON(analysis entity.CostAnalysis, filename string, outputDir string) (string, error)
	ExportToPDF(analysis entity.CostAnalysis, chart string, filename string, outputDir string) (string, error)
}
