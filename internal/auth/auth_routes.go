package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/register", middleware.AuthMiddleware(), middleware.RoleMiddleware("HR", "ADMIN"), h.Register)
		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.Me)
	}
}
