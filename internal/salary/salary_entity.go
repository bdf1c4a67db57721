package salary

import "time"

const (
	CategoryEarning   = "EARNING"
	CategoryDeduction = "DEDUCTION"
)

const (
	ComputationPercentage = "PERCENTAGE"
	ComputationFixed      = "FIXED"
)

const (
	BaseWage  = "WAGE"
	BaseBasic = "BASIC"
)

// SalaryInfo holds the wage configuration for one employee.
// BreakTimeHours is informational and never enters payroll math.
type SalaryInfo struct {
	ID                 string
	EmployeeID         string
	MonthlyWage        float64
	YearlyWage         float64
	WorkingDaysPerWeek int
	BreakTimeHours     float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SalaryComponentType is org-wide reference data, seeded once.
type SalaryComponentType struct {
	ID        string
	Name      string
	Category  string
	SortOrder int
}

// EmployeeSalaryComponent selects and parameterizes one component type
// for one employee; unique on the (employee, type) pair.
type EmployeeSalaryComponent struct {
	ID              string
	EmployeeID      string
	ComponentTypeID string
	ComputationType string
	PercentageValue *float64
	PercentageBase  *string
	FixedAmount     *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined from the type row.
	Name      string
	Category  string
	SortOrder int
}
