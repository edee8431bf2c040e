package entity

import "sort"

// ServiceCost represents a cost amount for a specific AWS service.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// MonthlyServiceCosts holds the grouped result for a single billing month as
// returned by Cost Explorer: the period start date ("YYYY-MM-DD") and the
// per-service unblended amounts for that month.
type MonthlyServiceCosts struct {
	PeriodStart string        `json:"period_start"`
	Services    []ServiceCost `json:"services"`
}

// CostTable maps a "YYYY-MM" month key to the per-service amounts observed in
// that month. Services missing from a month are simply absent and treated as
// zero by consumers.
type CostTable map[string]map[string]float64

// Months returns the table's month keys sorted ascending. The zero-padded
// "YYYY-MM" format makes lexicographic order chronological.
func (t CostTable) Months() []string {
	months := make([]string, 0, len(t))
	for m := range t {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// MonthTotal sums every service amount recorded for the given month.
func (t CostTable) MonthTotal(month string) float64 {
	var total float64
	for _, cost := range t[month] {
		total += cost
	}
	return total
}

// ComparisonEntry is the month-over-month delta for one service.
// PercentDefined is false when the previous month has no spend for the
// service; PercentChange carries no meaning in that case.
type ComparisonEntry struct {
	ServiceName    string  `json:"service_name"`
	Current        float64 `json:"current"`
	Previous       float64 `json:"previous"`
	Change         float64 `json:"change"`
	PercentChange  float64 `json:"percent_change"`
	PercentDefined bool    `json:"percent_defined"`
}

// CostAnalysis is the analyzer output: the ranked comparison for the latest
// month, the full table it was derived from, and the two month keys compared.
type CostAnalysis struct {
	Comparison    []ComparisonEntry `json:"comparison"`
	Table         CostTable         `json:"table"`
	CurrentMonth  string            `json:"current_month"`
	PreviousMonth string            `json:"previous_month"`
	AccountID     string            `json:"account_id,omitempty"`
}
