package payroll

type EmployeeSummary struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
}

type SalaryInfoSummary struct {
	MonthlyWage        float64 `json:"monthly_wage"`
	YearlyWage         float64 `json:"yearly_wage"`
	WorkingDaysPerWeek int     `json:"working_days_per_week"`
}

type AttendanceSummary struct {
	TotalWorkingDays     int     `json:"total_working_days"`
	DaysPresent          float64 `json:"days_present"`
	PaidLeaveDays        float64 `json:"paid_leave_days"`
	UnpaidLeaveDays      float64 `json:"unpaid_leave_days"`
	PayableDays          float64 `json:"payable_days"`
	AttendancePercentage int     `json:"attendance_percentage"`
}

type PayrollSummary struct {
	GrossEarnings      float64 `json:"gross_earnings"`
	TotalDeductions    float64 `json:"total_deductions"`
	ProRatedEarnings   float64 `json:"pro_rated_earnings"`
	ProRatedDeductions float64 `json:"pro_rated_deductions"`
	UnpaidDeduction    float64 `json:"unpaid_deduction"`
	NetSalary          float64 `json:"net_salary"`
}

type PayrollResponse struct {
	Employee   EmployeeSummary   `json:"employee"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	SalaryInfo SalaryInfoSummary `json:"salary_info"`
	Attendance AttendanceSummary `json:"attendance"`
	Earnings   []ComponentAmount `json:"earnings"`
	Deductions []ComponentAmount `json:"deductions"`
	Summary    PayrollSummary    `json:"summary"`
}

type CalculateQuery struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type MyPayrollQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
}
