package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "taskmint/pkg/errors"
)

// NewOKResp returns a successful envelope with the given message.
func NewOKResp(message string) Resp {
	return Resp{
		Success: true,
		Message: message,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends a failure envelope. The status comes from a pkg/errors.HTTPError
// when err is one; anything else is reported as a 500 without leaking err.
func Error(c *gin.Context, err error) {
	ErrorDetail(c, err, "")
}

// ErrorDetail is Error with an extra diagnostic string in the "error" field.
func ErrorDetail(c *gin.Context, err error, detail string) {
	status := pkgErrors.StatusCode(err)
	message := DefaultErrorMessage
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		message = httpErr.Message
	}

	c.JSON(status, Resp{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		Success: false,
		Message: "Unauthorized request",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Message: "Rate limit exceeded",
	})
}
