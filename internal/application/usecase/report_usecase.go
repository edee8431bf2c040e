package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
)

// ReportUseCase runs the cost report pipeline: fetch, analyze, render,
// build, deliver. One invocation produces exactly one Slack message or a
// failure result; there is no retry and no partial delivery.
type ReportUseCase struct {
	costRepo     repository.CostRepository
	deliveryRepo repository.DeliveryRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
	now          func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	costRepo repository.CostRepository,
	deliveryRepo repository.DeliveryRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		costRepo:     costRepo,
		deliveryRepo: deliveryRepo,
		exportRepo:   exportRepo,
		console:      console,
		now:          time.Now,
	}
}

// Run executes one report invocation and maps every outcome onto the
// status/body contract. Panics anywhere in the pipeline are recovered here
// and reported as unexpected errors.
func (uc *ReportUseCase) Run(ctx context.Context, args *types.CLIArgs) (result entity.RunResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.console.LogError("Unexpected error in report run: %v", r)
			result = failure(fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	start, end := DateRange(uc.now(), args.LookbackDays)

	status := uc.console.Status(fmt.Sprintf("Fetching cost data from %s to %s...",
		start.Format("2006-01-02"), end.Format("2006-01-02")))
	raw, err := uc.costRepo.GetMonthlyServiceCosts(ctx, start, end)
	status.Stop()

	if err == nil && len(raw) == 0 {
		err = types.ErrNoCostData
	}
	if err != nil {
		uc.console.LogError("An error occurred while fetching cost data: %s", err)
		return failure("Error fetching cost data")
	}

	analysis, err := AnalyzeCosts(raw, args.TopServices)
	if err != nil {
		uc.console.LogError("Error analyzing cost data: %s", err)
		if errors.Is(err, types.ErrInsufficientHistory) {
			return failure("Error analyzing cost data: insufficient history")
		}
		return failure("Error analyzing cost data")
	}

	// Identidade da conta é decorativa no relatório; falha não aborta o run.
	if accountID, err := uc.costRepo.GetAccountID(ctx); err == nil {
		analysis.AccountID = accountID
	} else {
		uc.console.LogWarning("Could not resolve account ID: %s", err)
	}

	var budgets []entity.BudgetInfo
	if args.Budgets {
		budgets, err = uc.costRepo.GetBudgets(ctx)
		if err != nil {
			uc.console.LogWarning("Could not fetch budgets: %s", err)
		}
	}

	chart := RenderChart(analysis.Table)
	blocks := BuildReport(analysis, chart, budgets)

	uc.exportReports(analysis, chart, args)

	if args.DryRun {
		uc.console.Println(chart)
		if encoded, err := json.MarshalIndent(blocks, "", "  "); err == nil {
			uc.console.Println(string(encoded))
		}
		uc.console.LogInfo("Dry run: report not sent")
		return entity.RunResult{StatusCode: http.StatusOK, Body: jsonBody("Dry run: report not sent")}
	}

	if _, err := uc.deliveryRepo.Send(ctx, blocks); err != nil {
		uc.console.LogError("Error sending message to Slack: %s", err)
		return failure("Error sending report to Slack")
	}

	uc.console.LogSuccess("Report sent to Slack successfully")
	return entity.RunResult{StatusCode: http.StatusOK, Body: jsonBody("Report sent to Slack successfully")}
}

// exportReports writes the requested local archival formats. Export
// problems are logged and never fail the run.
func (uc *ReportUseCase) exportReports(analysis entity.CostAnalysis, chart string, args *types.CLIArgs) {
	if len(args.ReportType) == 0 {
		return
	}

	name := args.ReportName
	if name == "" {
		name = "aws-cost-report"
	}

	for _, reportType := range args.ReportType {
		var path string
		var err error
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(analysis, name, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(analysis, name, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(analysis, chart, name, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.console.LogWarning("Failed to export %s report: %s", reportType, err)
			continue
		}
		uc.console.LogInfo("Exported %s report to %s", reportType, path)
	}
}

// failure builds the uniform 500 result.
func failure(message string) entity.RunResult {
	return entity.RunResult{StatusCode: http.StatusInternalServerError, Body: jsonBody(message)}
}

// jsonBody JSON-encodes the human-readable message, matching the wire
// contract of the invoking environment.
func jsonBody(message string) string {
	encoded, _ := json.Marshal(message)
	return string(encoded)
}
