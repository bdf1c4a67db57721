package attendance

import "time"

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
	StatusLeave   = "LEAVE"
	StatusWeekend = "WEEKEND"
	StatusHoliday = "HOLIDAY"
)

// A day clocked shorter than this is recorded as HALF_DAY.
const halfDayThresholdHours = 4.0

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string
	WorkHours  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
