package salary

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertInfo(ctx context.Context, info SalaryInfo) error
	GetInfoByEmployee(ctx context.Context, employeeID string) (SalaryInfo, error)
	ListComponentTypes(ctx context.Context) ([]SalaryComponentType, error)
	GetComponentType(ctx context.Context, id string) (SalaryComponentType, error)
	UpsertComponent(ctx context.Context, c EmployeeSalaryComponent) error
	ListComponentsByEmployee(ctx context.Context, employeeID string) ([]EmployeeSalaryComponent, error)
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

func (r *repository) UpsertInfo(ctx context.Context, info SalaryInfo) error {
	query := `
        INSERT INTO salary_infos (
            id, employee_id, monthly_wage, yearly_wage, working_days_per_week, break_time_hours
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (employee_id) DO UPDATE
        SET monthly_wage = EXCLUDED.monthly_wage,
            yearly_wage = EXCLUDED.yearly_wage,
            working_days_per_week = EXCLUDED.working_days_per_week,
            break_time_hours = EXCLUDED.break_time_hours,
            updated_at = NOW()
    `
	_, err := r.q().ExecContext(
		ctx, query,
		info.ID, info.EmployeeID, info.MonthlyWage, info.YearlyWage,
		info.WorkingDaysPerWeek, info.BreakTimeHours,
	)
	return err
}

func (r *repository) GetInfoByEmployee(ctx context.Context, employeeID string) (SalaryInfo, error) {
	query := `
        SELECT id::text, employee_id::text, monthly_wage, yearly_wage,
               working_days_per_week, break_time_hours, created_at, updated_at
        FROM salary_infos
        WHERE employee_id = $1
    `
	var info SalaryInfo
	err := r.q().QueryRowContext(ctx, query, employeeID).Scan(
		&info.ID, &info.EmployeeID, &info.MonthlyWage, &info.YearlyWage,
		&info.WorkingDaysPerWeek, &info.BreakTimeHours, &info.CreatedAt, &info.UpdatedAt,
	)
	return info, err
}

func (r *repository) ListComponentTypes(ctx context.Context) ([]SalaryComponentType, error) {
	query := `
        SELECT id::text, name, category, sort_order
        FROM salary_component_types
        ORDER BY sort_order ASC
    `
	rows, err := r.q().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []SalaryComponentType{}
	for rows.Next() {
		var t SalaryComponentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.SortOrder); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (r *repository) GetComponentType(ctx context.Context, id string) (SalaryComponentType, error) {
	query := `SELECT id::text, name, category, sort_order FROM salary_component_types WHERE id = $1`
	var t SalaryComponentType
	err := r.q().QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Category, &t.SortOrder)
	return t, err
}

func (r *repository) UpsertComponent(ctx context.Context, c EmployeeSalaryComponent) error {
	query := `
        INSERT INTO employee_salary_components (
            id, employee_id, component_type_id, computation_type,
            percentage_value, percentage_base, fixed_amount
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (employee_id, component_type_id) DO UPDATE
        SET computation_type = EXCLUDED.computation_type,
            percentage_value = EXCLUDED.percentage_value,
            percentage_base = EXCLUDED.percentage_base,
            fixed_amount = EXCLUDED.fixed_amount,
            updated_at = NOW()
    `
	_, err := r.q().ExecContext(
		ctx, query,
		c.ID, c.EmployeeID, c.ComponentTypeID, c.ComputationType,
		c.PercentageValue, c.PercentageBase, c.FixedAmount,
	)
	return err
}

func (r *repository) ListComponentsByEmployee(ctx context.Context, employeeID string) ([]EmployeeSalaryComponent, error) {
	query := `
        SELECT esc.id::text, esc.employee_id::text, esc.component_type_id::text,
               esc.computation_type, esc.percentage_value, esc.percentage_base, esc.fixed_amount,
               esc.created_at, esc.updated_at,
               sct.name, sct.category, sct.sort_order
        FROM employee_salary_components esc
        JOIN salary_component_types sct ON sct.id = esc.component_type_id
        WHERE esc.employee_id = $1
        ORDER BY sct.sort_order ASC
    `
	rows, err := r.q().QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := []EmployeeSalaryComponent{}
	for rows.Next() {
		var c EmployeeSalaryComponent
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.ComponentTypeID,
			&c.ComputationType, &c.PercentageValue, &c.PercentageBase, &c.FixedAmount,
			&c.CreatedAt, &c.UpdatedAt,
			&c.Name, &c.Category, &c.SortOrder,
		); err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	return components, rows.Err()
}
