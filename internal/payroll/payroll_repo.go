package payroll

import (
	"context"
	"database/sql"
	"time"
)

// SalaryConfig is the wage snapshot payroll reads. Break time is
// deliberately absent; it never enters the math.
type SalaryConfig struct {
	MonthlyWage        float64
	YearlyWage         float64
	WorkingDaysPerWeek int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock

// Repository is strictly read-only: payroll computes over state owned
// by the attendance, leave, and salary subsystems and never writes.
type Repository interface {
	FindEmployee(ctx context.Context, employeeID string) (EmployeeSummary, error)
	FindSalaryConfig(ctx context.Context, employeeID string) (SalaryConfig, error)
	FindComponents(ctx context.Context, employeeID string) ([]Component, error)
	FindAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceRecord, error)
	FindApprovedLeavesOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (EmployeeSummary, error) {
	query := `
        SELECT id::text, employee_number, name
        FROM employees
        WHERE id = $1 AND deleted_at IS NULL
    `
	var e EmployeeSummary
	err := r.db.QueryRowContext(ctx, query, employeeID).Scan(&e.ID, &e.EmployeeNumber, &e.Name)
	return e, err
}

func (r *repository) FindSalaryConfig(ctx context.Context, employeeID string) (SalaryConfig, error) {
	query := `
        SELECT monthly_wage, yearly_wage, working_days_per_week
        FROM salary_infos
        WHERE employee_id = $1
    `
	var cfg SalaryConfig
	err := r.db.QueryRowContext(ctx, query, employeeID).Scan(
		&cfg.MonthlyWage, &cfg.YearlyWage, &cfg.WorkingDaysPerWeek,
	)
	return cfg, err
}

func (r *repository) FindComponents(ctx context.Context, employeeID string) ([]Component, error) {
	query := `
        SELECT sct.name, sct.category, sct.sort_order,
               esc.computation_type,
               COALESCE(esc.percentage_value, 0),
               COALESCE(esc.percentage_base, ''),
               COALESCE(esc.fixed_amount, 0)
        FROM employee_salary_components esc
        JOIN salary_component_types sct ON sct.id = esc.component_type_id
        WHERE esc.employee_id = $1
        ORDER BY sct.sort_order ASC
    `
	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := []Component{}
	for rows.Next() {
		var c Component
		if err := rows.Scan(
			&c.Name, &c.Category, &c.SortOrder,
			&c.ComputationType, &c.PercentageValue, &c.PercentageBase, &c.FixedAmount,
		); err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

func (r *repository) FindAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceRecord, error) {
	query := `
        SELECT date, status
        FROM attendances
        WHERE employee_id = $1 AND date BETWEEN $2 AND $3
    `
	rows, err := r.db.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []AttendanceRecord{}
	for rows.Next() {
		var a AttendanceRecord
		if err := rows.Scan(&a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *repository) FindApprovedLeavesOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error) {
	query := `
        SELECT leave_type, start_date, end_date
        FROM leaves
        WHERE employee_id = $1
          AND status = 'APPROVED'
          AND start_date <= $3
          AND end_date >= $2
    `
	rows, err := r.db.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []LeaveRecord{}
	for rows.Next() {
		var l LeaveRecord
		if err := rows.Scan(&l.LeaveType, &l.StartDate, &l.EndDate); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}
