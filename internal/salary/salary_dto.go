package salary

type UpsertSalaryInfoRequest struct {
	MonthlyWage        float64 `json:"monthly_wage" binding:"required,gt=0"`
	WorkingDaysPerWeek int     `json:"working_days_per_week" binding:"required,oneof=5 6 7"`
	BreakTimeHours     float64 `json:"break_time_hours" binding:"omitempty,gte=0,lte=8"`
}

type SalaryInfoResponse struct {
	EmployeeID         string  `json:"employee_id"`
	MonthlyWage        float64 `json:"monthly_wage"`
	YearlyWage         float64 `json:"yearly_wage"`
	WorkingDaysPerWeek int     `json:"working_days_per_week"`
	BreakTimeHours     float64 `json:"break_time_hours"`
}

type UpsertComponentRequest struct {
	ComponentTypeID string   `json:"component_type_id" binding:"required,uuid"`
	ComputationType string   `json:"computation_type" binding:"required,oneof=PERCENTAGE FIXED"`
	PercentageValue *float64 `json:"percentage_value" binding:"omitempty,gte=0"`
	PercentageBase  *string  `json:"percentage_base" binding:"omitempty,oneof=WAGE BASIC"`
	FixedAmount     *float64 `json:"fixed_amount" binding:"omitempty,gte=0"`
}

type UpsertComponentsRequest struct {
	Components []UpsertComponentRequest `json:"components" binding:"required,min=1,dive"`
}

type ComponentResponse struct {
	ID              string   `json:"id"`
	ComponentTypeID string   `json:"component_type_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	SortOrder       int      `json:"sort_order"`
	ComputationType string   `json:"computation_type"`
	PercentageValue *float64 `json:"percentage_value,omitempty"`
	PercentageBase  *string  `json:"percentage_base,omitempty"`
	FixedAmount     *float64 `json:"fixed_amount,omitempty"`
}

type ComponentTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}
