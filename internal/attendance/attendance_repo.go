package attendance

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, a Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	UpdateCheckIn(ctx context.Context, id string, checkIn time.Time) error
	UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error
	ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const attendanceColumns = `
	id::text, employee_id::text, date, check_in, check_out, status, work_hours, created_at, updated_at
`

func scanAttendance(row interface{ Scan(...any) error }) (Attendance, error) {
	var a Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.WorkHours, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *repository) Create(ctx context.Context, a Attendance) error {
	query := `
        INSERT INTO attendances (id, employee_id, date, check_in, check_out, status, work_hours)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.ExecContext(ctx, query, a.ID, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Status, a.WorkHours)
	return err
}

func (r *repository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`
	return scanAttendance(r.db.QueryRowContext(ctx, query, employeeID, date))
}

func (r *repository) UpdateCheckIn(ctx context.Context, id string, checkIn time.Time) error {
	query := `
        UPDATE attendances
        SET check_in = $2, status = $3, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, checkIn, StatusPresent)
	return err
}

func (r *repository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, status string, workHours float64) error {
	query := `
        UPDATE attendances
        SET check_out = $2, status = $3, work_hours = $4, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, checkOut, status, workHours)
	return err
}

func (r *repository) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	query := `
        SELECT ` + attendanceColumns + `
        FROM attendances
        WHERE employee_id = $1 AND date BETWEEN $2 AND $3
        ORDER BY date ASC
    `
	rows, err := r.db.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// UpsertLeaveDay writes a LEAVE row for the date unless the employee
// already has a clocked record there. Presence always wins over leave.
func (r *repository) UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error {
	query := `
        INSERT INTO attendances (id, employee_id, date, status, work_hours)
        VALUES (gen_random_uuid(), $1, $2, $3, 0)
        ON CONFLICT (employee_id, date) DO UPDATE
        SET status = EXCLUDED.status, updated_at = NOW()
        WHERE attendances.check_in IS NULL
    `
	_, err := r.db.ExecContext(ctx, query, employeeID, date, StatusLeave)
	return err
}
