package attendance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", h.CheckIn)
		attendances.POST("/check-out", h.CheckOut)
		attendances.GET("/me", h.ListMine)
		attendances.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.ListByEmployee)
	}
}
