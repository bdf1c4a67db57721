package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, leaveID string) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error)
	ListAll(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error)
	Approve(ctx context.Context, leaveID, reviewerID string) (LeaveResponse, error)
	Reject(ctx context.Context, leaveID, reviewerID string) (LeaveResponse, error)
	Cancel(ctx context.Context, leaveID, employeeID string) (LeaveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     l,
	}
}

func (s *service) Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	// Application-time validation counts business days only. Payroll
	// clips the same span by calendar days; see the leave aggregator.
	if BusinessDays(start, end) == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoBusinessDays
	}

	overlapping, err := s.repo.HasOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlapping {
		return LeaveResponse{}, leaveerrors.ErrOverlappingLeave
	}

	l := Leave{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", l.ID),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", l.LeaveType),
	)

	return mapToResponse(l), nil
}

func (s *service) Get(ctx context.Context, leaveID string) (LeaveResponse, error) {
	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.GetByID(ctx, leaveID)
	if errors.Is(err, sql.ErrNoRows) {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if err != nil {
		return LeaveResponse{}, err
	}

	return mapToResponse(l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	q = normalize(q)
	offset := (q.Page - 1) * q.Limit

	total, err := s.repo.CountByEmployee(ctx, employeeID, q.Status)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	leaves, err := s.repo.ListByEmployee(ctx, employeeID, q.Status, q.Limit, offset)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return mapToListResponse(leaves), response.NewPaginationMeta(total, q.Page, q.Limit), nil
}

func (s *service) ListAll(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	q = normalize(q)
	offset := (q.Page - 1) * q.Limit

	total, err := s.repo.CountByStatus(ctx, q.Status)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	leaves, err := s.repo.ListByStatus(ctx, q.Status, q.Limit, offset)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return mapToListResponse(leaves), response.NewPaginationMeta(total, q.Page, q.Limit), nil
}

// Approve flips a pending leave to APPROVED and stages a
// LeaveApprovedEvent in the same transaction. The attendance consumer
// picks the event up and writes LEAVE rows for the span.
func (s *service) Approve(ctx context.Context, leaveID, reviewerID string) (LeaveResponse, error) {
	l, err := s.getPending(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpdateStatus(ctx, l.ID, StatusApproved, reviewerID); err != nil {
		return LeaveResponse{}, err
	}

	event := events.LeaveApprovedEvent{
		EventType:  "leave.approved",
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		ApprovedBy: reviewerID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return LeaveResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "leave",
		AggregateID:   l.ID,
		EventType:     event.EventType,
		Topic:         events.LeaveApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	l.Status = StatusApproved
	l.ReviewedBy = &reviewerID

	s.logger.Info("leave approved",
		zap.String("leave_id", l.ID),
		zap.String("reviewed_by", reviewerID),
	)

	return mapToResponse(l), nil
}

func (s *service) Reject(ctx context.Context, leaveID, reviewerID string) (LeaveResponse, error) {
	l, err := s.getPending(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := s.repo.UpdateStatus(ctx, l.ID, StatusRejected, reviewerID); err != nil {
		return LeaveResponse{}, err
	}

	l.Status = StatusRejected
	l.ReviewedBy = &reviewerID

	return mapToResponse(l), nil
}

func (s *service) Cancel(ctx context.Context, leaveID, employeeID string) (LeaveResponse, error) {
	l, err := s.getPending(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	if l.EmployeeID != employeeID {
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}

	if err := s.repo.UpdateStatus(ctx, l.ID, StatusCancelled, ""); err != nil {
		return LeaveResponse{}, err
	}

	l.Status = StatusCancelled

	return mapToResponse(l), nil
}

func (s *service) getPending(ctx context.Context, leaveID string) (Leave, error) {
	if _, err := uuid.Parse(leaveID); err != nil {
		return Leave{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.GetByID(ctx, leaveID)
	if errors.Is(err, sql.ErrNoRows) {
		return Leave{}, leaveerrors.ErrLeaveNotFound
	}
	if err != nil {
		return Leave{}, err
	}
	if l.Status != StatusPending {
		return Leave{}, leaveerrors.ErrLeaveNotPending
	}

	return l, nil
}

// BusinessDays counts Mon-Fri dates in the inclusive span.
func BusinessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

func normalize(q ListLeavesQuery) ListLeavesQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	return q
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		BusinessDays: BusinessDays(l.StartDate, l.EndDate),
		Reason:       l.Reason,
		Status:       l.Status,
	}
	if l.ReviewedBy != nil {
		resp.ReviewedBy = *l.ReviewedBy
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapToResponse(l))
	}
	return responses
}
