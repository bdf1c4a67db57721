package app

import (
	"database/sql"

	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/counter"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Registry wires every repository, service, and handler once per
// process. The worker and consumer binaries reuse the repositories
// without the HTTP layer.
type Registry struct {
	SQLDB *sql.DB

	OutboxRepo kafka.OutboxRepository

	RBACService rbac.Service
	RBACHandler *rbac.Handler

	AuthHandler       *auth.Handler
	EmployeeHandler   *employee.Handler
	AttendanceHandler *attendance.Handler
	LeaveHandler      *leave.Handler
	SalaryHandler     *salary.Handler
	PayrollHandler    *payroll.Handler

	AttendanceRepo attendance.Repository
	SalaryService  salary.Service
}

func NewRegistry(gormDB *gorm.DB, rdb *redis.Client) (*Registry, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}

	rbacRepo := rbac.NewRepository(gormDB)
	rbacService := rbac.NewService(rbacRepo, enforcer)

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	counterRepo := counter.NewRepository(gormDB)

	authRepo := auth.NewRepository(gormDB)
	authService := auth.NewService(authRepo)

	employeeRepo := employee.NewRepository(sqlDB)
	employeeService := employee.NewService(sqlDB, employeeRepo, outboxRepo, counterRepo, rdb)

	attendanceRepo := attendance.NewRepository(sqlDB)
	attendanceService := attendance.NewService(attendanceRepo)

	leaveRepo := leave.NewRepository(sqlDB)
	leaveService := leave.NewService(sqlDB, leaveRepo, outboxRepo)

	salaryRepo := salary.NewRepository(sqlDB)
	salaryService := salary.NewService(sqlDB, salaryRepo)

	payrollRepo := payroll.NewRepository(sqlDB)
	payrollService := payroll.NewService(payrollRepo)

	return &Registry{
		SQLDB:             sqlDB,
		OutboxRepo:        outboxRepo,
		RBACService:       rbacService,
		RBACHandler:       rbac.NewHandler(rbacService, rbacRepo),
		AuthHandler:       auth.NewHandler(authService),
		EmployeeHandler:   employee.NewHandler(employeeService),
		AttendanceHandler: attendance.NewHandler(attendanceService),
		LeaveHandler:      leave.NewHandler(leaveService),
		SalaryHandler:     salary.NewHandler(salaryService),
		PayrollHandler:    payroll.NewHandler(payrollService),
		AttendanceRepo:    attendanceRepo,
		SalaryService:     salaryService,
	}, nil
}
