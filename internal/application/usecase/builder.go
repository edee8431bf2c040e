package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

// BuildReport assembles the Slack block sequence: a header naming both
// months, an intro section, one section per comparison entry, an optional
// budget-status section, a divider and the bar chart wrapped in a code
// block. The account section only appears when the account ID resolved.
func BuildReport(analysis entity.CostAnalysis, chart string, budgets []entity.BudgetInfo) []entity.Block {
	blocks := []entity.Block{
		entity.NewHeaderBlock(fmt.Sprintf("AWS Cost Analysis: %s vs %s", analysis.CurrentMonth, analysis.PreviousMonth)),
	}

	if analysis.AccountID != "" {
		blocks = append(blocks, entity.NewSectionBlock(fmt.Sprintf("Account: `%s`", analysis.AccountID)))
	}

	blocks = append(blocks, entity.NewSectionBlock(
		fmt.Sprintf("*Top %d Most Expensive Services Comparison:*", len(analysis.Comparison))))

	for _, e := range analysis.Comparison {
		blocks = append(blocks, entity.NewSectionBlock(formatComparison(e)))
	}

	if len(budgets) > 0 {
		blocks = append(blocks, entity.NewSectionBlock(formatBudgets(budgets)))
	}

	blocks = append(blocks,
		entity.NewDividerBlock(),
		entity.NewHeaderBlock("6-Month Cost Overview"),
		entity.NewSectionBlock(fmt.Sprintf("```\n%s\n```", chart)),
	)

	return blocks
}

// formatComparison renders one service's month-over-month line set.
func formatComparison(e entity.ComparisonEntry) string {
	icon := "➖"
	if e.Change > 0 {
		icon = "🔼"
	} else if e.Change < 0 {
		icon = "🔽"
	}

	percent := "N/A"
	if e.PercentDefined {
		percent = fmt.Sprintf("%.2f%%", e.PercentChange)
	}

	return fmt.Sprintf("*%s*\nCurrent: $%.2f\nPrevious: $%.2f\nChange: %s $%.2f (%s)",
		e.ServiceName, e.Current, e.Previous, icon, math.Abs(e.Change), percent)
}

// formatBudgets renders the optional budget-status section body.
func formatBudgets(budgets []entity.BudgetInfo) string {
	lines := make([]string, 0, len(budgets)+1)
	lines = append(lines, "*Budget Status:*")
	for _, b := range budgets {
		line := fmt.Sprintf("%s: $%.2f / $%.2f", b.Name, b.Actual, b.Limit)
		if b.Forecast > 0 {
			line += fmt.Sprintf(" (forecast $%.2f)", b.Forecast)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
