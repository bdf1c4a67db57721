package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService Service) {
	roles := r.Group("/rbac")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("/roles", middleware.RBACAuthorize(rbacService, "rbac", "read"), h.ListRoles)
		roles.GET("/permissions", middleware.RBACAuthorize(rbacService, "rbac", "read"), h.ListPermissions)
		roles.GET("/roles/:id/permissions", middleware.RBACAuthorize(rbacService, "rbac", "read"), h.GetRolePermissions)
		roles.PUT("/roles/:id/permissions", middleware.RBACAuthorize(rbacService, "rbac", "update"), h.UpdateRolePermissions)
	}
}
