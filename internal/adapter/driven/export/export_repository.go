package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava a comparação mês-a-mês e os totais mensais em CSV.
func (r *ExportRepositoryImpl) ExportToCSV(analysis entity.CostAnalysis, filename, outputDir string) (string, error) {
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
		"Service",
		fmt.Sprintf("Cost (%s)", analysis.CurrentMonth),
		fmt.Sprintf("Cost (%s)", analysis.PreviousMonth),
		"Change", "Percent Change",
	}
	writer.Write(headers)

	for _, e := range analysis.Comparison {
		percent := "N/A"
		if e.PercentDefined {
			percent = fmt.Sprintf("%.2f%%", e.PercentChange)
		}
		record := []string{
			e.ServiceName,
			fmt.Sprintf("$%.2f", e.Current),
			fmt.Sprintf("$%.2f", e.Previous),
			fmt.Sprintf("$%.2f", e.Change),
			percent,
		}
		writer.Write(record)
	}

	// Bloco separado com os totais mensais do período completo
	writer.Write([]string{})
	writer.Write([]string{"Month", "Total Cost"})
	for _, month := range analysis.Table.Months() {
		writer.Write([]string{month, fmt.Sprintf("$%.2f", analysis.Table.MonthTotal(month))})
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava a análise completa em JSON identado.
func (r *ExportRepositoryImpl) ExportToJSON(analysis entity.CostAnalysis, filename, outputDir string) (string, error) {
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
	if err := encoder.Encode(analysis); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava a comparação e o gráfico de barras em um PDF A4.
func (r *ExportRepositoryImpl) ExportToPDF(analysis entity.CostAnalysis, chart, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, tr(fmt.Sprintf("AWS Cost Analysis: %s vs %s", analysis.CurrentMonth, analysis.PreviousMonth)))
	pdf.Ln(12)

	if analysis.AccountID != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Account: %s", analysis.AccountID)))
		pdf.Ln(10)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Top Services Comparison")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, e := range analysis.Comparison {
		percent := "N/A"
		if e.PercentDefined {
			percent = fmt.Sprintf("%.2f%%", e.PercentChange)
		}
		line := fmt.Sprintf("%s: $%.2f (previous $%.2f, change $%.2f, %s)",
			e.ServiceName, e.Current, e.Previous, e.Change, percent)
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "6-Month Cost Overview")
	pdf.Ln(8)

	pdf.SetFont("Courier", "", 8)
	pdf.SetTextColor(50, 50, 50)
	pdf.MultiCell(0, 4, tr(chart), "", "L", false)

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
