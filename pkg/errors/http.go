package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error carrying the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status of err, or 500 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Code > 0 {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized request")
)
