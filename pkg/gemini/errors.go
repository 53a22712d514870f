package gemini

import "fmt"

// APIError is returned when the API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
