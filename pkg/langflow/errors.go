package langflow

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by Run when the API key or URL is missing
	ErrNotConfigured = errors.New("langflow: LANGFLOW_API_KEY environment variable not found")
	// ErrInvalidResponse is returned when the run API answers with a body that is not JSON
	ErrInvalidResponse = errors.New("langflow: response body is not valid JSON")
)

// APIError is returned when the run API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("LangFlow API responded with status: %d", e.StatusCode)
}

// HTTPStatus returns the upstream status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
