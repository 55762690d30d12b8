package payroll

import "time"

// ResolvePeriod expands a period type and anchor date into the closed
// calendar-day interval containing the anchor. Weekly periods start on
// Monday and span seven days; monthly periods cover the anchor's
// calendar month. The anchor's time-of-day and zone are discarded.
func ResolvePeriod(periodType PeriodType, anchor time.Time) (Period, error) {
	if anchor.IsZero() {
		return Period{}, ErrInvalidPeriod
	}

	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)

	switch periodType {
	case PeriodTypeWeekly:
		// Monday = 0 ... Sunday = 6
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return Period{StartDate: start, EndDate: start.AddDate(0, 0, 6)}, nil
	case PeriodTypeMonthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Period{StartDate: start, EndDate: start.AddDate(0, 1, -1)}, nil
	default:
		return Period{}, ErrInvalidPeriod
	}
}
