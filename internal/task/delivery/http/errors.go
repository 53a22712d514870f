package http

import (
	"errors"
	"net/http"

	"taskmint/internal/task"
	pkgErrors "taskmint/pkg/errors"
)

var (
	errCreateFieldsRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title, userId, and userType are required")
	errOwnerRequired         = pkgErrors.NewHTTPError(http.StatusBadRequest, "userId and userType are required")
	errTranscriptRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transcript is required")
	errExtractedTextRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "extractedText is required")
	errInvalidBody           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidDeadline       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid deadline")
	errInvalidToday          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid today")
	errTitleRequired         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	errTaskNotFound          = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	errLLMNotConfigured      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "OPENAI_API_KEY environment variable not found. Please set your API key in the environment variables.")
	errLangFlowNotConfigured = pkgErrors.NewHTTPError(http.StatusInternalServerError, "LANGFLOW_API_KEY environment variable not found. Please set your API key in the environment variables.")
)

// Fallback messages for failures without a more specific mapping.
const (
	msgCreateFailed    = "Error creating task"
	msgListFailed      = "Error fetching tasks"
	msgUpdateFailed    = "Error updating task"
	msgDeleteFailed    = "Error deleting task"
	msgAnalyticsFailed = "Error fetching task analytics"
	msgVoiceFailed     = "Error processing voice input"
	msgSendTextFailed  = "Failed to send text to LangFlow"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500 carrying the endpoint's fallback message.
func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, task.ErrOwnerRequired):
		return errOwnerRequired
	case errors.Is(err, task.ErrTranscriptRequired):
		return errTranscriptRequired
	case errors.Is(err, task.ErrExtractedTextRequired):
		return errExtractedTextRequired
	case errors.Is(err, task.ErrLLMNotConfigured):
		return errLLMNotConfigured
	case errors.Is(err, task.ErrLangFlowNotConfigured):
		return errLangFlowNotConfigured
	case errors.Is(err, task.ErrValidation), errors.Is(err, task.ErrInputMissing):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, fallback)
	}
}

// errorDetail returns the diagnostic text exposed for upstream failures.
func errorDetail(err error) string {
	var upErr *task.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Error()
	}
	return ""
}
