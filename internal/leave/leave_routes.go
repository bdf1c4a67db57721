package leave

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", middleware.Idempotency(rdb), h.Apply)
		leaves.GET("/me", h.ListMine)
		leaves.POST("/:id/cancel", h.Cancel)

		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), h.ListAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), h.Get)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), middleware.Idempotency(rdb), h.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.Reject)
	}
}
