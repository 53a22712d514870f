package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrNotFound             = errors.New("task not found")
	ErrValidation           = errors.New("validation error")
	ErrInputMissing         = errors.New("input missing")
	ErrServiceMisconfigured = errors.New("service misconfigured")
	ErrMalformedExtraction  = errors.New("malformed extraction")

	ErrTitleRequired         = fmt.Errorf("%w: title is required", ErrValidation)
	ErrOwnerRequired         = fmt.Errorf("%w: userId and userType are required", ErrValidation)
	ErrTranscriptRequired    = fmt.Errorf("%w: transcript is required", ErrInputMissing)
	ErrExtractedTextRequired = fmt.Errorf("%w: extractedText is required", ErrInputMissing)
	ErrLLMNotConfigured      = fmt.Errorf("%w: no language model provider configured", ErrServiceMisconfigured)
	ErrLangFlowNotConfigured = fmt.Errorf("%w: LANGFLOW_API_KEY environment variable not found", ErrServiceMisconfigured)
)

// Upstream service names.
const (
	ServiceLLM      = "llm"
	ServiceLangFlow = "langflow"
)

// UpstreamError is an external service call that failed or answered with a
// non-success status. Status is 0 for transport failures.
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Service, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
