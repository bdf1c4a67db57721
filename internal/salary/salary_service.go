package salary

import (
	"context"
	"database/sql"
	"errors"

	salaryerrors "go-hrms/internal/salary/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	UpsertInfo(ctx context.Context, employeeID string, req UpsertSalaryInfoRequest) (SalaryInfoResponse, error)
	GetInfo(ctx context.Context, employeeID string) (SalaryInfoResponse, error)
	ListComponentTypes(ctx context.Context) ([]ComponentTypeResponse, error)
	UpsertComponents(ctx context.Context, employeeID string, req UpsertComponentsRequest) ([]ComponentResponse, error)
	GetComponents(ctx context.Context, employeeID string) ([]ComponentResponse, error)
	GetWorkingDaysPerWeek(ctx context.Context, employeeID string) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) UpsertInfo(ctx context.Context, employeeID string, req UpsertSalaryInfoRequest) (SalaryInfoResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryInfoResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	info := SalaryInfo{
		ID:                 uuid.NewString(),
		EmployeeID:         employeeID,
		MonthlyWage:        req.MonthlyWage,
		YearlyWage:         req.MonthlyWage * 12,
		WorkingDaysPerWeek: req.WorkingDaysPerWeek,
		BreakTimeHours:     req.BreakTimeHours,
	}

	if err := s.repo.UpsertInfo(ctx, info); err != nil {
		return SalaryInfoResponse{}, err
	}

	s.logger.Info("salary info upserted",
		zap.String("employee_id", employeeID),
		zap.Int("working_days_per_week", req.WorkingDaysPerWeek),
	)

	return mapInfoToResponse(info), nil
}

func (s *service) GetInfo(ctx context.Context, employeeID string) (SalaryInfoResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryInfoResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	info, err := s.repo.GetInfoByEmployee(ctx, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return SalaryInfoResponse{}, salaryerrors.ErrSalaryInfoNotFound
	}
	if err != nil {
		return SalaryInfoResponse{}, err
	}

	return mapInfoToResponse(info), nil
}

func (s *service) ListComponentTypes(ctx context.Context) ([]ComponentTypeResponse, error) {
	types, err := s.repo.ListComponentTypes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ComponentTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, ComponentTypeResponse{
			ID:        t.ID,
			Name:      t.Name,
			Category:  t.Category,
			SortOrder: t.SortOrder,
		})
	}

	return responses, nil
}

// UpsertComponents replaces or inserts the given component rows for one
// employee in a single transaction.
func (s *service) UpsertComponents(ctx context.Context, employeeID string, req UpsertComponentsRequest) ([]ComponentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryerrors.ErrInvalidEmployeeID
	}

	for _, c := range req.Components {
		switch c.ComputationType {
		case ComputationPercentage:
			if c.PercentageValue == nil || c.PercentageBase == nil {
				return nil, salaryerrors.ErrPercentageFieldsRequired
			}
		case ComputationFixed:
			if c.FixedAmount == nil {
				return nil, salaryerrors.ErrFixedAmountRequired
			}
		}

		if _, err := s.repo.GetComponentType(ctx, c.ComponentTypeID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, salaryerrors.ErrUnknownComponentType
			}
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, c := range req.Components {
		component := EmployeeSalaryComponent{
			ID:              uuid.NewString(),
			EmployeeID:      employeeID,
			ComponentTypeID: c.ComponentTypeID,
			ComputationType: c.ComputationType,
		}
		// Only the fields selected by the computation type survive.
		if c.ComputationType == ComputationPercentage {
			component.PercentageValue = c.PercentageValue
			component.PercentageBase = c.PercentageBase
		} else {
			component.FixedAmount = c.FixedAmount
		}

		if err := qtx.UpsertComponent(ctx, component); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("salary components upserted",
		zap.String("employee_id", employeeID),
		zap.Int("count", len(req.Components)),
	)

	return s.GetComponents(ctx, employeeID)
}

func (s *service) GetComponents(ctx context.Context, employeeID string) ([]ComponentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryerrors.ErrInvalidEmployeeID
	}

	components, err := s.repo.ListComponentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, salaryerrors.ErrComponentsNotFound
	}

	responses := make([]ComponentResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, ComponentResponse{
			ID:              c.ID,
			ComponentTypeID: c.ComponentTypeID,
			Name:            c.Name,
			Category:        c.Category,
			SortOrder:       c.SortOrder,
			ComputationType: c.ComputationType,
			PercentageValue: c.PercentageValue,
			PercentageBase:  c.PercentageBase,
			FixedAmount:     c.FixedAmount,
		})
	}

	return responses, nil
}

// GetWorkingDaysPerWeek backs the attendance consumer's workweek lookup.
func (s *service) GetWorkingDaysPerWeek(ctx context.Context, employeeID string) (int, error) {
	info, err := s.repo.GetInfoByEmployee(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return info.WorkingDaysPerWeek, nil
}

func mapInfoToResponse(info SalaryInfo) SalaryInfoResponse {
	return SalaryInfoResponse{
		EmployeeID:         info.EmployeeID,
		MonthlyWage:        info.MonthlyWage,
		YearlyWage:         info.YearlyWage,
		WorkingDaysPerWeek: info.WorkingDaysPerWeek,
		BreakTimeHours:     info.BreakTimeHours,
	}
}
