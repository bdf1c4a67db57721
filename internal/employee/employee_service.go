package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	employeeNumberCounter = "employee_number"
	optionsCacheKey       = "employees:options"
	optionsCacheTTL       = 5 * time.Minute
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error)
	Options(ctx context.Context) ([]EmployeeOption, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outboxRepo  kafka.OutboxRepository
	counterRepo counter.Repository
	rdb         *redis.Client
	sf          singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	counterRepo counter.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		db:          db,
		repo:        repo,
		outboxRepo:  outboxRepo,
		counterRepo: counterRepo,
		rdb:         rdb,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyUsed
	} else if !errors.Is(err, sql.ErrNoRows) {
		return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to check employee email", 500)
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	seq, err := s.counterRepo.GetNextValue(ctx, employeeNumberCounter)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: fmt.Sprintf("EMP-%06d", seq),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		Department:     req.Department,
		JoinDate:       joinDate,
		Status:         StatusActive,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: e.ID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return EmployeeResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee",
		AggregateID:   e.ID,
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee created",
		zap.String("employee_id", e.ID),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return mapToResponse(e), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(e), nil
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}

	offset := (q.Page - 1) * q.Limit

	total, err := s.repo.Count(ctx, q.Search)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	list, err := s.repo.List(ctx, q.Search, q.Limit, offset)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return mapToListResponse(list), response.NewPaginationMeta(total, q.Page, q.Limit), nil
}

// Options serves the employee dropdown. Reads go through Redis with a
// singleflight guard so a cold cache triggers exactly one DB query.
func (s *service) Options(ctx context.Context) ([]EmployeeOption, error) {
	if cached, err := s.rdb.Get(ctx, optionsCacheKey).Bytes(); err == nil {
		var options []EmployeeOption
		if err := json.Unmarshal(cached, &options); err == nil {
			return options, nil
		}
	}

	v, err, _ := s.sf.Do(optionsCacheKey, func() (interface{}, error) {
		options, err := s.repo.ListOptions(ctx)
		if err != nil {
			return nil, err
		}

		if payload, err := json.Marshal(options); err == nil {
			if err := s.rdb.Set(ctx, optionsCacheKey, payload, optionsCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache employee options", zap.Error(err))
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Phone != "" {
		e.Phone = req.Phone
	}
	if req.Position != "" {
		e.Position = req.Position
	}
	if req.Department != "" {
		e.Department = req.Department
	}
	if req.Status != "" {
		e.Status = req.Status
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	return mapToResponse(e), nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if err := s.rdb.Del(ctx, optionsCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate employee options cache", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Position:       e.Position,
		Department:     e.Department,
		JoinDate:       e.JoinDate.Format("2006-01-02"),
		Status:         e.Status,
	}
}

func mapToListResponse(list []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		responses = append(responses, mapToResponse(e))
	}
	return responses
}
