package payroll

import "time"

const (
	attendancePresent = "PRESENT"
	attendanceHalfDay = "HALF_DAY"
)

const leaveTypeUnpaid = "UNPAID"

// AttendanceRecord is the slice of an attendance row payroll cares
// about. Only PRESENT and HALF_DAY statuses carry presence credit.
type AttendanceRecord struct {
	Date   time.Time
	Status string
}

// LeaveRecord is an approved leave span overlapping the target month.
type LeaveRecord struct {
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
}

// DaysPresent credits 1.0 per PRESENT record and 0.5 per HALF_DAY
// record. Any other status, including LEAVE rows materialized by the
// leave-approval consumer, contributes nothing; leave credit flows
// through AggregateLeave instead.
func DaysPresent(records []AttendanceRecord) float64 {
	total := 0.0
	for _, r := range records {
		switch r.Status {
		case attendancePresent:
			total += 1.0
		case attendanceHalfDay:
			total += 0.5
		}
	}
	return total
}

// AggregateLeave clips each leave span to the month and splits the
// inclusive calendar-day counts into paid and unpaid buckets. Weekends
// inside a span count here, unlike the business-day validation applied
// when the leave was requested.
func AggregateLeave(leaves []LeaveRecord, monthStart, monthEnd time.Time) (paidLeaveDays, unpaidLeaveDays float64) {
	for _, l := range leaves {
		effectiveStart := l.StartDate
		if effectiveStart.Before(monthStart) {
			effectiveStart = monthStart
		}
		effectiveEnd := l.EndDate
		if effectiveEnd.After(monthEnd) {
			effectiveEnd = monthEnd
		}
		if effectiveEnd.Before(effectiveStart) {
			continue
		}

		days := float64(int(effectiveEnd.Sub(effectiveStart).Hours()/24)) + 1

		if l.LeaveType == leaveTypeUnpaid {
			unpaidLeaveDays += days
		} else {
			paidLeaveDays += days
		}
	}

	return paidLeaveDays, unpaidLeaveDays
}
