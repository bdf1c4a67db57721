package employee

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, search string, limit, offset int) ([]Employee, error)
	Count(ctx context.Context, search string) (int64, error)
	ListOptions(ctx context.Context) ([]EmployeeOption, error)
	Update(ctx context.Context, e Employee) error
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

const employeeColumns = `
	id::text, employee_number, name, email, COALESCE(phone, ''),
	position, department, join_date, status, created_at, updated_at
`

func scanEmployee(row interface{ Scan(...any) error }) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNumber, &e.Name, &e.Email, &e.Phone,
		&e.Position, &e.Department, &e.JoinDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *repository) Create(ctx context.Context, e Employee) error {
	query := `
        INSERT INTO employees (
            id, employee_number, name, email, phone, position, department, join_date, status
        ) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
    `
	_, err := r.q().ExecContext(
		ctx, query,
		e.ID, e.EmployeeNumber, e.Name, e.Email, e.Phone,
		e.Position, e.Department, e.JoinDate, e.Status,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`
	return scanEmployee(r.q().QueryRowContext(ctx, query, id))
}

func (r *repository) GetByEmail(ctx context.Context, email string) (Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 AND deleted_at IS NULL`
	return scanEmployee(r.q().QueryRowContext(ctx, query, email))
}

func (r *repository) List(ctx context.Context, search string, limit, offset int) ([]Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE deleted_at IS NULL
          AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR employee_number ILIKE '%' || $1 || '%')
        ORDER BY employee_number ASC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.q().QueryContext(ctx, query, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0, limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *repository) Count(ctx context.Context, search string) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM employees
        WHERE deleted_at IS NULL
          AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR employee_number ILIKE '%' || $1 || '%')
    `
	var total int64
	err := r.q().QueryRowContext(ctx, query, search).Scan(&total)
	return total, err
}

func (r *repository) ListOptions(ctx context.Context) ([]EmployeeOption, error) {
	query := `
        SELECT id::text, employee_number, name
        FROM employees
        WHERE deleted_at IS NULL AND status = $1
        ORDER BY name ASC
    `
	rows, err := r.q().QueryContext(ctx, query, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []EmployeeOption{}
	for rows.Next() {
		var o EmployeeOption
		if err := rows.Scan(&o.ID, &o.EmployeeNumber, &o.Name); err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

func (r *repository) Update(ctx context.Context, e Employee) error {
	query := `
        UPDATE employees
        SET name = $2,
            phone = NULLIF($3, ''),
            position = $4,
            department = $5,
            status = $6,
            updated_at = NOW()
        WHERE id = $1 AND deleted_at IS NULL
    `
	result, err := r.q().ExecContext(ctx, query, e.ID, e.Name, e.Phone, e.Position, e.Department, e.Status)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
