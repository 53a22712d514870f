package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "taskmint/pkg/errors"
	"taskmint/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "TaskMint API is healthy"
	HealthVersion = "1.0.0"
	ServiceName   = "taskmint"
	RootMessage   = "TaskMint API is running!"

	readyTimeout = 2 * time.Second
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Service is not ready")

// rootCheck godoc
// @Summary Root
// @Tags Health
// @Produce plain
// @Success 200 {string} string "TaskMint API is running!"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// apiHealthCheck godoc
// @Summary API health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "status, message and timestamp"
// @Router /api/v1/health [get]
func (srv HTTPServer) apiHealthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "OK",
		"message":   HealthMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once MongoDB and, when enabled, Redis answer a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if srv.mongo != nil {
		if err := srv.mongo.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck mongo: %v", err)
			response.Error(c, errNotReady)
			return
		}
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck redis: %v", err)
			response.Error(c, errNotReady)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
