package usecase

import "time"

// DateRange resolves the billing query window: end is the first day of the
// month containing now, start is end minus lookbackDays. Cost Explorer
// treats the range as inclusive-start, exclusive-end, so the current
// (partial) month is never included.
func DateRange(now time.Time, lookbackDays int) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -lookbackDays)
	return start, end
}
