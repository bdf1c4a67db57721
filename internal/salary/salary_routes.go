package salary

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(rate.Limit(10), 20))
	{
		salaries.GET("/component-types", h.ListComponentTypes)

		salaries.PUT("/info/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "update"), h.UpsertInfo)
		salaries.GET("/info/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "read"), h.GetInfo)
		salaries.PUT("/components/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "update"), h.UpsertComponents)
		salaries.GET("/components/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "read"), h.GetComponents)
	}
}
