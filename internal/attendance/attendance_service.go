package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	ListByMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		repo:   repo,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	today := truncateToDate(now)

	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil && existing.CheckIn != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return AttendanceResponse{}, err
	}

	a := Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     StatusPresent,
	}

	// A LEAVE or HOLIDAY row may already exist for today; clocking in
	// claims that row instead of inserting a duplicate date.
	if err == nil && existing.ID != "" {
		a.ID = existing.ID
		if err := s.repo.UpdateCheckIn(ctx, a.ID, now); err != nil {
			return AttendanceResponse{}, err
		}
	} else if err := s.repo.Create(ctx, a); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("employee checked in",
		zap.String("employee_id", employeeID),
		zap.String("date", today.Format("2006-01-02")),
	)

	return mapToResponse(a), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	today := truncateToDate(now)

	a, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if errors.Is(err, sql.ErrNoRows) {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if err != nil {
		return AttendanceResponse{}, err
	}
	if a.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if a.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	workHours := math.Round(now.Sub(*a.CheckIn).Hours()*100) / 100
	status := StatusPresent
	if workHours < halfDayThresholdHours {
		status = StatusHalfDay
	}

	if err := s.repo.UpdateCheckOut(ctx, a.ID, now, status, workHours); err != nil {
		return AttendanceResponse{}, err
	}

	a.CheckOut = &now
	a.Status = status
	a.WorkHours = workHours

	return mapToResponse(a), nil
}

func (s *service) ListByMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.repo.ListByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, mapToResponse(a))
	}

	return responses, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
		WorkHours:  a.WorkHours,
	}
	if a.CheckIn != nil {
		resp.CheckIn = a.CheckIn.Format(time.RFC3339)
	}
	if a.CheckOut != nil {
		resp.CheckOut = a.CheckOut.Format(time.RFC3339)
	}
	return resp
}
