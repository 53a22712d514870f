package usecase

import (
	"context"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/internal/task/repository"
)

// Create stores a single task for the given owner.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrTitleRequired
	}
	if !input.Owner.Valid() {
		return task.CreateOutput{}, task.ErrOwnerRequired
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:         title,
		Description:   input.Description,
		Deadline:      input.Deadline,
		EstimatedTime: input.EstimatedTime,
		Priority:      model.ParsePriority(input.Priority),
		UserID:        input.Owner.UserID,
		UserType:      input.Owner.UserType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.invalidateAnalytics(ctx, input.Owner)
	return task.CreateOutput{Task: t}, nil
}

// List returns the owner's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if !input.Owner.Valid() {
		return task.ListOutput{}, task.ErrOwnerRequired
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:   input.Owner.UserID,
		UserType: input.Owner.UserType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return task.ListOutput{Tasks: tasks}, nil
}
