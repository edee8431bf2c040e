package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
)

// AnalyzeCosts reshapes the raw grouped results into a month-keyed cost
// table, picks the two most recent months, ranks the latest month's top
// services by spend and computes the month-over-month delta for each.
//
// The returned comparison has at most topN entries, sorted by current-month
// cost descending. Services absent from the previous month compare against
// zero, with the percent change marked undefined.
func AnalyzeCosts(raw []entity.MonthlyServiceCosts, topN int) (entity.CostAnalysis, error) {
	table := make(entity.CostTable, len(raw))
	for _, month := range raw {
		start, err := time.Parse("2006-01-02", month.PeriodStart)
		if err != nil {
			return entity.CostAnalysis{}, fmt.Errorf("invalid period start %q: %w", month.PeriodStart, err)
		}
		key := start.Format("2006-01")
		if _, ok := table[key]; !ok {
			table[key] = make(map[string]float64, len(month.Services))
		}
		for _, sc := range month.Services {
			table[key][sc.ServiceName] = sc.Cost
		}
	}

	months := table.Months()
	if len(months) < 2 {
		return entity.CostAnalysis{}, types.ErrInsufficientHistory
	}
	currentMonth := months[len(months)-1]
	previousMonth := months[len(months)-2]

	ranked := make([]entity.ServiceCost, 0, len(table[currentMonth]))
	for service, cost := range table[currentMonth] {
		ranked = append(ranked, entity.ServiceCost{ServiceName: service, Cost: cost})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Cost != ranked[j].Cost {
			return ranked[i].Cost > ranked[j].Cost
		}
		return ranked[i].ServiceName < ranked[j].ServiceName
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	comparison := make([]entity.ComparisonEntry, 0, len(ranked))
	for _, sc := range ranked {
		previous := table[previousMonth][sc.ServiceName]
		change := sc.Cost - previous
		entry := entity.ComparisonEntry{
			ServiceName: sc.ServiceName,
			Current:     sc.Cost,
			Previous:    previous,
			Change:      change,
		}
		if previous > 0 {
			entry.PercentChange = change / previous * 100
			entry.PercentDefined = true
		}
		comparison = append(comparison, entry)
	}

	return entity.CostAnalysis{
		Comparison:    comparison,
		Table:         table,
		CurrentMonth:  currentMonth,
		PreviousMonth: previousMonth,
	}, nil
}
