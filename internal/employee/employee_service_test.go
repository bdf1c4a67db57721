package employee

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/messaging/kafka"
)

type fakeEmployeeRepo struct {
	createFn      func(ctx context.Context, e Employee) error
	getByIDFn     func(ctx context.Context, id string) (Employee, error)
	getByEmailFn  func(ctx context.Context, email string) (Employee, error)
	listFn        func(ctx context.Context, search string, limit, offset int) ([]Employee, error)
	countFn       func(ctx context.Context, search string) (int64, error)
	listOptionsFn func(ctx context.Context) ([]EmployeeOption, error)
	updateFn      func(ctx context.Context, e Employee) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (Employee, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeEmployeeRepo) List(ctx context.Context, search string, limit, offset int) ([]Employee, error) {
	return f.listFn(ctx, search, limit, offset)
}
func (f *fakeEmployeeRepo) Count(ctx context.Context, search string) (int64, error) {
	return f.countFn(ctx, search)
}
func (f *fakeEmployeeRepo) ListOptions(ctx context.Context) ([]EmployeeOption, error) {
	return f.listOptionsFn(ctx)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e Employee) error {
	return f.updateFn(ctx, e)
}

type fakeOutboxRepo struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	return f.createFn(ctx, event)
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func testRedis() *redis.Client {
	// No server behind this address; cache calls fail fast and the
	// service treats cache errors as misses.
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
}

func TestCreateEmployee_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var createdEmployee Employee
	var outboxEvent kafka.OutboxEvent

	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (Employee, error) {
			return Employee{}, sql.ErrNoRows
		},
		createFn: func(ctx context.Context, e Employee) error {
			createdEmployee = e
			return nil
		},
	}
	outbox := &fakeOutboxRepo{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = event
			return nil
		},
	}

	svc := NewService(db, repo, outbox, &fakeCounterRepo{next: 6}, testRedis())

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Jane Roe",
		Email:      "jane@corp.test",
		Position:   "Engineer",
		Department: "Platform",
		JoinDate:   "2026-01-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, createdEmployee.ID, outboxEvent.AggregateID)
	assert.Equal(t, "employee.created", outboxEvent.EventType)
	assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (Employee, error) {
			return Employee{ID: "existing"}, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{}, &fakeCounterRepo{}, testRedis())

	_, err = svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Jane Roe",
		Email:      "jane@corp.test",
		Position:   "Engineer",
		Department: "Platform",
		JoinDate:   "2026-01-15",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyUsed)
}

func TestCreateEmployee_RollsBackWhenOutboxFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeEmployeeRepo{
		getByEmailFn: func(ctx context.Context, email string) (Employee, error) {
			return Employee{}, sql.ErrNoRows
		},
		createFn: func(ctx context.Context, e Employee) error { return nil },
	}
	outbox := &fakeOutboxRepo{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			return assert.AnError
		},
	}

	svc := NewService(db, repo, outbox, &fakeCounterRepo{}, testRedis())

	_, err = svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Jane Roe",
		Email:      "jane@corp.test",
		Position:   "Engineer",
		Department: "Platform",
		JoinDate:   "2026-01-15",
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployee_NotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (Employee, error) {
			return Employee{}, sql.ErrNoRows
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{}, &fakeCounterRepo{}, testRedis())

	_, err = svc.GetByID(context.Background(), "0b1f8c3e-22aa-47f5-9b1d-1f2a3b4c5d6e")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestGetEmployee_InvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeEmployeeRepo{}, &fakeOutboxRepo{}, &fakeCounterRepo{}, testRedis())

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestListEmployees_Pagination(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepo{
		countFn: func(ctx context.Context, search string) (int64, error) { return 42, nil },
		listFn: func(ctx context.Context, search string, limit, offset int) ([]Employee, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 20, offset)
			return []Employee{{ID: "a", JoinDate: time.Now()}}, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{}, &fakeCounterRepo{}, testRedis())

	list, meta, err := svc.List(context.Background(), ListEmployeesQuery{Page: 3, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(42), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
}

func TestOptions_FallsBackToRepoWhenCacheUnavailable(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	calls := 0
	repo := &fakeEmployeeRepo{
		listOptionsFn: func(ctx context.Context) ([]EmployeeOption, error) {
			calls++
			return []EmployeeOption{{ID: "a", EmployeeNumber: "EMP-000001", Name: "Jane"}}, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{}, &fakeCounterRepo{}, testRedis())

	options, err := svc.Options(context.Background())
	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, 1, calls)
}
