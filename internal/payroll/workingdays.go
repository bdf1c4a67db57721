package payroll

import "time"

// IsWorkingDay classifies a weekday under a weekly working-day policy.
// Policy 5 excludes Sat/Sun, 6 excludes Sun only, anything else counts
// every day.
func IsWorkingDay(weekday time.Weekday, workingDaysPerWeek int) bool {
	switch workingDaysPerWeek {
	case 5:
		return weekday != time.Saturday && weekday != time.Sunday
	case 6:
		return weekday != time.Sunday
	default:
		return true
	}
}

// WorkingDaysInMonth counts working days by walking every calendar day
// of the month.
func WorkingDaysInMonth(year, month, workingDaysPerWeek int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d.Weekday(), workingDaysPerWeek) {
			days++
		}
	}

	return days
}
