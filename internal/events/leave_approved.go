package events

import "time"

const LeaveApprovedTopic = "hr.leave.approved.v1"

// LeaveApprovedEvent is published when a leave request transitions to
// APPROVED. The attendance consumer materializes LEAVE-status rows for
// the span so the calendar shows the absence; payroll never reads those
// rows for presence credit.
type LeaveApprovedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
