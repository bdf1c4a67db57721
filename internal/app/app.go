package app

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRouter(reg *Registry, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ContextLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	auth.RegisterRoutes(v1, reg.AuthHandler)
	employee.RegisterRoutes(v1, reg.EmployeeHandler, reg.RBACService)
	attendance.RegisterRoutes(v1, reg.AttendanceHandler, reg.RBACService)
	leave.RegisterRoutes(v1, reg.LeaveHandler, reg.RBACService, rdb)
	salary.RegisterRoutes(v1, reg.SalaryHandler, reg.RBACService)
	payroll.RegisterRoutes(v1, reg.PayrollHandler)
	rbac.RegisterRoutes(v1, reg.RBACHandler, reg.RBACService)

	return r
}
