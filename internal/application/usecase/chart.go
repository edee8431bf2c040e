package usecase

import (
	"fmt"
	"strings"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

// chartWidth is the fixed bar width in characters.
const chartWidth = 20

// RenderChart draws a fixed-width bar chart of total monthly spend, one
// block per month in chronological order. Bars are scaled against the most
// expensive month.
func RenderChart(table entity.CostTable) string {
	months := table.Months()

	maxCost := 0.0
	for _, month := range months {
		if total := table.MonthTotal(month); total > maxCost {
			maxCost = total
		}
	}

	if maxCost == 0 {
		return "All costs are $0.00 for this period\n"
	}

	var chart strings.Builder
	for _, month := range months {
		total := table.MonthTotal(month)
		barLength := int((total / maxCost) * chartWidth)
		bar := strings.Repeat("█", barLength) + strings.Repeat(" ", chartWidth-barLength)
		fmt.Fprintf(&chart, "%s: $%.2f\n", month, total)
		fmt.Fprintf(&chart, "%s | %.2f\n\n", bar, total)
	}

	return chart.String()
}
