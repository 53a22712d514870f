package repository

import (
	"context"

	"taskmint/internal/model"
	"taskmint/internal/task/analytics"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask returns a zero-value Task (ID == "") when the id does not exist.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	// DeleteTask reports whether a task was removed.
	DeleteTask(ctx context.Context, id string) (bool, error)
}

// AnalyticsCache stores computed reports per owner. Invalidate advances the
// owner's generation so reports stored under an older one are never read.
type AnalyticsCache interface {
	// Generation returns the owner's current generation. ok is false when
	// it cannot be read, in which case the cache must be bypassed.
	Generation(ctx context.Context, owner model.Owner) (gen int64, ok bool)
	GetReport(ctx context.Context, key ReportKey) (analytics.Report, bool)
	SetReport(ctx context.Context, key ReportKey, report analytics.Report)
	Invalidate(ctx context.Context, owner model.Owner)
}
