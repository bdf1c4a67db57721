package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/messaging/kafka"
)

type fakeLeaveRepo struct {
	createFn       func(ctx context.Context, l Leave) error
	getByIDFn      func(ctx context.Context, id string) (Leave, error)
	overlapFn      func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	updateStatusFn func(ctx context.Context, id, status, reviewerID string) error
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) Repository            { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, l Leave) error { return f.createFn(ctx, l) }
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (Leave, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID, status string, limit, offset int) ([]Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) CountByEmployee(ctx context.Context, employeeID, status string) (int64, error) {
	return 0, nil
}
func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}
func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.overlapFn(ctx, employeeID, start, end)
}
func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id, status, reviewerID string) error {
	return f.updateStatusFn(ctx, id, status, reviewerID)
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

func TestBusinessDays(t *testing.T) {
	// Mon 2026-03-02 through Sun 2026-03-08: five weekdays.
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, BusinessDays(start, end))

	// Saturday only.
	sat := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, BusinessDays(sat, sat))
}

func TestApply_WeekendOnlySpanRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeLeaveRepo{}, &fakeOutboxRepo{})

	_, err = svc.Apply(context.Background(), uuid.NewString(), ApplyLeaveRequest{
		LeaveType: TypePaid,
		StartDate: "2026-03-07",
		EndDate:   "2026-03-08",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrNoBusinessDays)
}

func TestApply_InvertedRangeRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeLeaveRepo{}, &fakeOutboxRepo{})

	_, err = svc.Apply(context.Background(), uuid.NewString(), ApplyLeaveRequest{
		LeaveType: TypePaid,
		StartDate: "2026-03-10",
		EndDate:   "2026-03-09",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestApply_OverlapRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeLeaveRepo{
		overlapFn: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return true, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{})

	_, err = svc.Apply(context.Background(), uuid.NewString(), ApplyLeaveRequest{
		LeaveType: TypeSick,
		StartDate: "2026-03-09",
		EndDate:   "2026-03-10",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeave)
}

func TestApply_CreatesPending(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	var created Leave
	repo := &fakeLeaveRepo{
		overlapFn: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, l Leave) error {
			created = l
			return nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{})

	resp, err := svc.Apply(context.Background(), uuid.NewString(), ApplyLeaveRequest{
		LeaveType: TypeUnpaid,
		StartDate: "2026-03-09",
		EndDate:   "2026-03-13",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, 5, resp.BusinessDays)
	assert.Equal(t, StatusPending, created.Status)
}

func TestApprove_StagesOutboxEventInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	leaveID := uuid.NewString()
	employeeID := uuid.NewString()
	reviewerID := uuid.NewString()

	var outboxEvent kafka.OutboxEvent
	repo := &fakeLeaveRepo{
		getByIDFn: func(ctx context.Context, id string) (Leave, error) {
			return Leave{
				ID:         leaveID,
				EmployeeID: employeeID,
				LeaveType:  TypePaid,
				StartDate:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
				Status:     StatusPending,
			}, nil
		},
		updateStatusFn: func(ctx context.Context, id, status, rid string) error {
			assert.Equal(t, StatusApproved, status)
			assert.Equal(t, reviewerID, rid)
			return nil
		},
	}
	outbox := &fakeOutboxRepo{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = event
			return nil
		},
	}

	svc := NewService(db, repo, outbox)

	resp, err := svc.Approve(context.Background(), leaveID, reviewerID)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, events.LeaveApprovedTopic, outboxEvent.Topic)

	var event events.LeaveApprovedEvent
	assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &event))
	assert.Equal(t, leaveID, event.LeaveID)
	assert.Equal(t, "2026-03-09", event.StartDate)
	assert.Equal(t, "2026-03-11", event.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprove_NonPendingRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeLeaveRepo{
		getByIDFn: func(ctx context.Context, id string) (Leave, error) {
			return Leave{ID: id, Status: StatusApproved}, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{})

	_, err = svc.Approve(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotPending)
}

func TestCancel_OnlyOwner(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	owner := uuid.NewString()
	repo := &fakeLeaveRepo{
		getByIDFn: func(ctx context.Context, id string) (Leave, error) {
			return Leave{ID: id, EmployeeID: owner, Status: StatusPending}, nil
		},
	}

	svc := NewService(db, repo, &fakeOutboxRepo{})

	_, err = svc.Cancel(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, leaveerrors.ErrNotLeaveOwner)
}
