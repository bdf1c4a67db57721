package attendance

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in,omitempty"`
	CheckOut   string  `json:"check_out,omitempty"`
	Status     string  `json:"status"`
	WorkHours  float64 `json:"work_hours"`
}

type MonthQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
}
