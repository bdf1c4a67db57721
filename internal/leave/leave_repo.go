package leave

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l Leave) error
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID, status string, limit, offset int) ([]Leave, error)
	CountByEmployee(ctx context.Context, employeeID, status string) (int64, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]Leave, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id, status, reviewerID string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

type querier interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func (r *repository) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const leaveColumns = `
	id::text, employee_id::text, leave_type, start_date, end_date,
	COALESCE(reason, ''), status, reviewed_by::text, reviewed_at, created_at, updated_at
`

func scanLeave(row interface{ Scan(...any) error }) (Leave, error) {
	var l Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.ReviewedBy, &l.ReviewedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *repository) Create(ctx context.Context, l Leave) error {
	query := `
        INSERT INTO leaves (id, employee_id, leave_type, start_date, end_date, reason, status)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
    `
	_, err := r.q().ExecContext(ctx, query, l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.Status)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`
	return scanLeave(r.q().QueryRowContext(ctx, query, id))
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID, status string, limit, offset int) ([]Leave, error) {
	query := `
        SELECT ` + leaveColumns + `
        FROM leaves
        WHERE employee_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY start_date DESC
        LIMIT $3 OFFSET $4
    `
	return r.queryList(ctx, query, employeeID, status, limit, offset)
}

func (r *repository) CountByEmployee(ctx context.Context, employeeID, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM leaves WHERE employee_id = $1 AND ($2 = '' OR status = $2)`
	var total int64
	err := r.q().QueryRowContext(ctx, query, employeeID, status).Scan(&total)
	return total, err
}

func (r *repository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Leave, error) {
	query := `
        SELECT ` + leaveColumns + `
        FROM leaves
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	return r.queryList(ctx, query, status, limit, offset)
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM leaves WHERE ($1 = '' OR status = $1)`
	var total int64
	err := r.q().QueryRowContext(ctx, query, status).Scan(&total)
	return total, err
}

func (r *repository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM leaves
            WHERE employee_id = $1
              AND status IN ($2, $3)
              AND start_date <= $5
              AND end_date >= $4
        )
    `
	var exists bool
	err := r.q().QueryRowContext(ctx, query, employeeID, StatusPending, StatusApproved, start, end).Scan(&exists)
	return exists, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status, reviewerID string) error {
	query := `
        UPDATE leaves
        SET status = $2,
            reviewed_by = NULLIF($3, '')::uuid,
            reviewed_at = NOW(),
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.q().ExecContext(ctx, query, id, status, reviewerID)
	return err
}

func (r *repository) queryList(ctx context.Context, query string, args ...any) ([]Leave, error) {
	rows, err := r.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}
