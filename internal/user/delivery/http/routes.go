package http

import (
	"github.com/gin-gonic/gin"

	"taskmint/internal/middleware"
)

// RegisterRoutes maps the auth endpoints onto rg (mounted at /api/v1/auth).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/test", h.Test)
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/gmail", h.Gmail)
	rg.GET("/logout", mw.Auth(), h.Logout)
}
