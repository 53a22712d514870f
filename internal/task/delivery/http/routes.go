package http

import (
	"github.com/gin-gonic/gin"

	"taskmint/internal/middleware"
)

// RegisterRoutes maps the task endpoints under /api/tasks.
// The two AI-backed endpoints are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/parse-voice", mw.RateLimit(), h.ParseVoice)
		tasks.GET("/analytics", h.Analytics)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}

// RegisterLangFlowRoutes maps the document extraction endpoints under /langflow.
func RegisterLangFlowRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/send-text", mw.RateLimit(), h.SendText)
	rg.POST("/test", h.LangFlowTest)
}
