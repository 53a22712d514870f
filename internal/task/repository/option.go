package repository

import (
	"time"

	"taskmint/internal/model"
)

// CreateTaskOptions holds the sanitized fields of a new Task.
type CreateTaskOptions struct {
	Title         string
	Description   string
	Deadline      *time.Time
	EstimatedTime string
	Priority      model.Priority
	UserID        string
	UserType      model.UserType
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions scopes a listing to one owner.
type ListTasksOptions struct {
	UserID   string
	UserType model.UserType
	// OldestFirst sorts by createdAt ascending; newest first otherwise.
	OldestFirst bool
}

// UpdateTaskOptions holds the fields to set on an existing Task.
// Nil pointers are left untouched; the Clear flags unset a field.
type UpdateTaskOptions struct {
	ID               string
	Title            *string
	Description      *string
	Deadline         *time.Time
	ClearDeadline    bool
	EstimatedTime    *string
	Priority         *model.Priority
	Completed        *bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

// ReportKey identifies a cached analytics report.
type ReportKey struct {
	Owner model.Owner
	// Period is the month the report was computed in, formatted as 2006-01.
	Period     string
	Generation int64
}
