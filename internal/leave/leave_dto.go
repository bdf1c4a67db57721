package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=PAID SICK CASUAL UNPAID"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"omitempty,max=500"`
}

type ReviewLeaveRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	BusinessDays int    `json:"business_days"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	ReviewedBy   string `json:"reviewed_by,omitempty"`
}

type ListLeavesQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
