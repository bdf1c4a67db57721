package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAttendanceRepo struct {
	createFn        func(ctx context.Context, a Attendance) error
	getByDateFn     func(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	updateCheckInFn func(ctx context.Context, id string, checkIn time.Time) error
	checkOutFn      func(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error
	listFn          func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	upsertLeaveFn   func(ctx context.Context, employeeID string, date time.Time) error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a Attendance) error {
	return f.createFn(ctx, a)
}
func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error) {
	return f.getByDateFn(ctx, employeeID, date)
}
func (f *fakeAttendanceRepo) UpdateCheckIn(ctx context.Context, id string, checkIn time.Time) error {
	return f.updateCheckInFn(ctx, id, checkIn)
}
func (f *fakeAttendanceRepo) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error {
	return f.checkOutFn(ctx, id, checkOut, status, workHours)
}
func (f *fakeAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	return f.listFn(ctx, employeeID, start, end)
}
func (f *fakeAttendanceRepo) UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error {
	return f.upsertLeaveFn(ctx, employeeID, date)
}

func newTestService(repo Repository, now time.Time) *service {
	return &service{
		repo:   repo,
		now:    func() time.Time { return now },
		logger: zap.NewNop(),
	}
}

func TestCheckIn_CreatesPresentRecord(t *testing.T) {
	employeeID := uuid.NewString()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	var created Attendance
	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), date)
			return Attendance{}, sql.ErrNoRows
		},
		createFn: func(ctx context.Context, a Attendance) error {
			created = a
			return nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckIn(context.Background(), employeeID)

	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.NotNil(t, created.CheckIn)
}

func TestCheckIn_Twice(t *testing.T) {
	employeeID := uuid.NewString()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	checkIn := now.Add(-time.Hour)

	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{ID: "a1", CheckIn: &checkIn, Status: StatusPresent}, nil
		},
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckIn(context.Background(), employeeID)

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
}

func TestCheckIn_ClaimsExistingLeaveRow(t *testing.T) {
	employeeID := uuid.NewString()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	claimed := false
	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{ID: "leave-row", Status: StatusLeave}, nil
		},
		updateCheckInFn: func(ctx context.Context, id string, checkIn time.Time) error {
			claimed = true
			assert.Equal(t, "leave-row", id)
			return nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckIn(context.Background(), employeeID)

	assert.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestCheckOut_FullDay(t *testing.T) {
	employeeID := uuid.NewString()
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := checkIn.Add(8 * time.Hour)

	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{ID: "a1", EmployeeID: employeeID, Date: checkIn, CheckIn: &checkIn, Status: StatusPresent}, nil
		},
		checkOutFn: func(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error {
			assert.Equal(t, StatusPresent, status)
			assert.Equal(t, 8.0, workHours)
			return nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckOut(context.Background(), employeeID)

	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.Equal(t, 8.0, resp.WorkHours)
}

func TestCheckOut_ShortDayBecomesHalfDay(t *testing.T) {
	employeeID := uuid.NewString()
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := checkIn.Add(3*time.Hour + 30*time.Minute)

	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{ID: "a1", EmployeeID: employeeID, Date: checkIn, CheckIn: &checkIn, Status: StatusPresent}, nil
		},
		checkOutFn: func(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error {
			assert.Equal(t, StatusHalfDay, status)
			return nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.CheckOut(context.Background(), employeeID)

	assert.NoError(t, err)
	assert.Equal(t, StatusHalfDay, resp.Status)
	assert.Equal(t, 3.5, resp.WorkHours)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	employeeID := uuid.NewString()
	now := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)

	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{}, sql.ErrNoRows
		},
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckOut(context.Background(), employeeID)

	assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	employeeID := uuid.NewString()
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	now := checkOut.Add(time.Hour)

	repo := &fakeAttendanceRepo{
		getByDateFn: func(ctx context.Context, id string, date time.Time) (Attendance, error) {
			return Attendance{ID: "a1", CheckIn: &checkIn, CheckOut: &checkOut}, nil
		},
	}

	svc := newTestService(repo, now)
	_, err := svc.CheckOut(context.Background(), employeeID)

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
}

func TestListByMonth_DefaultsToCurrentMonth(t *testing.T) {
	employeeID := uuid.NewString()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := &fakeAttendanceRepo{
		listFn: func(ctx context.Context, id string, start, end time.Time) ([]Attendance, error) {
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), end)
			return []Attendance{}, nil
		},
	}

	svc := newTestService(repo, now)
	_, err := svc.ListByMonth(context.Background(), employeeID, 0, 0)

	assert.NoError(t, err)
}
