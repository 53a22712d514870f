package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/internal/task/repository"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// flexString accepts any JSON scalar and keeps its text. Objects and arrays
// decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*s = flexString(x)
	case float64:
		*s = flexString(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		*s = flexString(strconv.FormatBool(x))
	default:
		*s = ""
	}
	return nil
}

func (s flexString) trimmed() string {
	return strings.TrimSpace(string(s))
}

// extractedElement is one task object as produced by a model.
type extractedElement struct {
	Title         flexString `json:"title"`
	Deadline      flexString `json:"deadline"`
	EstimatedTime flexString `json:"estimatedTime"`
	Priority      flexString `json:"priority"`
	Description   flexString `json:"description"`
}

// parseElements reads the upstream text as a JSON array. On failure it
// returns the warning to report instead of an error.
func parseElements(text string) ([]json.RawMessage, string) {
	cleaned := sanitizeJSONResponse(text)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Sprintf("%s: empty response", task.ErrMalformedExtraction)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elems); err != nil {
		return nil, fmt.Sprintf("%s: expected a JSON array of tasks", task.ErrMalformedExtraction)
	}
	return elems, ""
}

// persistElements sanitizes and stores every element on its own. A failing
// element is recorded and never stops its siblings. fallbackTitle replaces
// a missing title; when it is empty such elements fail.
func (uc *implUseCase) persistElements(
	ctx context.Context,
	elems []json.RawMessage,
	owner model.Owner,
	today time.Time,
	fallbackTitle string,
) ([]model.Task, []task.ElementFailure) {
	tasks := make([]model.Task, 0, len(elems))
	failures := make([]task.ElementFailure, 0)

	for i, raw := range elems {
		var el extractedElement
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			failures = append(failures, task.ElementFailure{Index: i, Reason: "element is not a task object"})
			continue
		}
		if err := json.Unmarshal(raw, &el); err != nil {
			failures = append(failures, task.ElementFailure{Index: i, Reason: "element is not a task object"})
			continue
		}

		opt := uc.sanitizeElement(el, owner, today, fallbackTitle)
		if opt.Title == "" {
			failures = append(failures, task.ElementFailure{Index: i, Reason: "title is required"})
			continue
		}

		t, err := uc.repo.CreateTask(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.persistElements CreateTask %q: %v", opt.Title, err)
			failures = append(failures, task.ElementFailure{Index: i, Title: opt.Title, Reason: err.Error()})
			continue
		}
		tasks = append(tasks, t)
	}

	if len(tasks) > 0 {
		uc.invalidateAnalytics(ctx, owner)
	}
	return tasks, failures
}

func (uc *implUseCase) sanitizeElement(el extractedElement, owner model.Owner, today time.Time, fallbackTitle string) repository.CreateTaskOptions {
	title := el.Title.trimmed()
	if title == "" {
		title = strings.TrimSpace(fallbackTitle)
	}

	return repository.CreateTaskOptions{
		Title:         title,
		Description:   el.Description.trimmed(),
		Deadline:      uc.dateMath.ParseOptional(el.Deadline.trimmed(), today),
		EstimatedTime: el.EstimatedTime.trimmed(),
		Priority:      model.ParsePriority(el.Priority.trimmed()),
		UserID:        owner.UserID,
		UserType:      owner.UserType,
	}
}

// upstreamError wraps a failed external call, keeping the upstream status
// when the cause exposes one.
func upstreamError(service string, err error) error {
	var withStatus interface{ HTTPStatus() int }
	status := 0
	if errors.As(err, &withStatus) {
		status = withStatus.HTTPStatus()
	}
	return &task.UpstreamError{Service: service, Status: status, Err: err}
}
