package task

import (
	"encoding/json"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/task/analytics"
)

// --- CRUD Inputs / Outputs ---

type CreateInput struct {
	Title         string
	Description   string
	Deadline      *time.Time
	EstimatedTime string
	Priority      string
	Owner         model.Owner
}

type CreateOutput struct {
	Task model.Task
}

type ListInput struct {
	Owner model.Owner
}

type ListOutput struct {
	Tasks []model.Task
}

// OptionalTime distinguishes "not sent" from "sent as null" in a patch.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	ID            string
	Title         *string
	Description   *string
	Deadline      OptionalTime
	EstimatedTime *string
	Priority      *string
	Completed     *bool
}

type UpdateOutput struct {
	Task model.Task
}

type AnalyticsInput struct {
	Owner model.Owner
}

type AnalyticsOutput struct {
	Report analytics.Report
}

// --- Extraction ---

// ParseVoiceInput is a transcript to split into tasks. Today anchors relative
// dates; the current time in the configured timezone is used when nil.
type ParseVoiceInput struct {
	Transcript string
	Today      *time.Time
	Owner      model.Owner
}

// ExtractDocumentInput is text already extracted from an email or document.
type ExtractDocumentInput struct {
	ExtractedText string
	Owner         model.Owner
}

// ElementFailure records why one extracted element was not persisted.
type ElementFailure struct {
	Index  int    `json:"index"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason"`
}

// ExtractionOutput is the result of either extraction path.
type ExtractionOutput struct {
	Raw      json.RawMessage
	Tasks    []model.Task
	Failures []ElementFailure
	Warning  string // set when the upstream text was not a JSON array
}
