package payroll

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const roleHR = "HR"
const roleAdmin = "ADMIN"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, callerEmployeeID, callerRole, employeeID string, month, year int) (PayrollResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		repo:   repo,
		now:    time.Now,
		logger: l,
	}
}

// Calculate derives the prorated payroll for one employee and month.
// The result is computed fresh on every call and never stored, since
// attendance and leave data can change retroactively.
func (s *service) Calculate(ctx context.Context, callerEmployeeID, callerRole, employeeID string, month, year int) (PayrollResponse, error) {
	if callerRole != roleHR && callerRole != roleAdmin && callerEmployeeID != employeeID {
		return PayrollResponse{}, payrollerrors.ErrForbidden
	}

	if _, err := uuid.Parse(employeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	employee, err := s.repo.FindEmployee(ctx, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return PayrollResponse{}, err
	}

	// Preconditions, in order; each failure is a distinct signal.
	cfg, err := s.repo.FindSalaryConfig(ctx, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return PayrollResponse{}, payrollerrors.ErrSalaryInfoNotConfigured
	}
	if err != nil {
		return PayrollResponse{}, err
	}

	components, err := s.repo.FindComponents(ctx, employeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if len(components) == 0 {
		return PayrollResponse{}, payrollerrors.ErrComponentsNotConfigured
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	attendance, err := s.repo.FindAttendanceInRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	leaves, err := s.repo.FindApprovedLeavesOverlapping(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	totalWorkingDays := WorkingDaysInMonth(year, month, cfg.WorkingDaysPerWeek)
	daysPresent := DaysPresent(attendance)
	paidLeaveDays, unpaidLeaveDays := AggregateLeave(leaves, monthStart, monthEnd)

	// Unpaid leave is excluded here; that exclusion is how it reduces
	// pay through the proration ratio below.
	payableDays := daysPresent + paidLeaveDays

	resolution := ResolveComponents(components, cfg.MonthlyWage)

	attendanceRatio := 0.0
	if totalWorkingDays > 0 {
		attendanceRatio = payableDays / float64(totalWorkingDays)
	}

	proRatedEarnings := round2(resolution.TotalEarnings * attendanceRatio)
	proRatedDeductions := round2(resolution.TotalDeductions * attendanceRatio)
	netSalary := round2(proRatedEarnings - proRatedDeductions)

	// Diagnostic only: already reflected in the ratio, never
	// subtracted from net a second time.
	unpaidDeduction := 0.0
	if totalWorkingDays > 0 {
		unpaidDeduction = round2((float64(totalWorkingDays) - payableDays) * (cfg.MonthlyWage / float64(totalWorkingDays)))
	}

	s.logger.Debug("payroll calculated",
		zap.String("employee_id", employeeID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Float64("net_salary", netSalary),
	)

	return PayrollResponse{
		Employee: employee,
		Month:    month,
		Year:     year,
		SalaryInfo: SalaryInfoSummary{
			MonthlyWage:        cfg.MonthlyWage,
			YearlyWage:         cfg.YearlyWage,
			WorkingDaysPerWeek: cfg.WorkingDaysPerWeek,
		},
		Attendance: AttendanceSummary{
			TotalWorkingDays:     totalWorkingDays,
			DaysPresent:          daysPresent,
			PaidLeaveDays:        paidLeaveDays,
			UnpaidLeaveDays:      unpaidLeaveDays,
			PayableDays:          payableDays,
			AttendancePercentage: int(math.Round(attendanceRatio * 100)),
		},
		Earnings:   resolution.Earnings,
		Deductions: resolution.Deductions,
		Summary: PayrollSummary{
			GrossEarnings:      resolution.TotalEarnings,
			TotalDeductions:    resolution.TotalDeductions,
			ProRatedEarnings:   proRatedEarnings,
			ProRatedDeductions: proRatedDeductions,
			UnpaidDeduction:    unpaidDeduction,
			NetSalary:          netSalary,
		},
	}, nil
}
