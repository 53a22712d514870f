package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskmint/pkg/log"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and attaches it to the context so every log line carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
