package usecase

import (
	"context"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/internal/task/repository"
)

// Update applies a partial patch. completedAt follows the completed flag:
// it is stamped when an open task is completed, kept when an already
// completed task is completed again, and cleared when the task is reopened.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	current, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if current.ID == "" {
		return task.UpdateOutput{}, task.ErrNotFound
	}

	opt, err := uc.buildUpdateOptions(current, input)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrNotFound
	}

	uc.invalidateAnalytics(ctx, current.Owner())
	return task.UpdateOutput{Task: updated}, nil
}

func (uc *implUseCase) buildUpdateOptions(current model.Task, input task.UpdateInput) (repository.UpdateTaskOptions, error) {
	opt := repository.UpdateTaskOptions{
		ID:            input.ID,
		Description:   input.Description,
		EstimatedTime: input.EstimatedTime,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return repository.UpdateTaskOptions{}, task.ErrTitleRequired
		}
		opt.Title = &title
	}

	if input.Deadline.Set {
		if input.Deadline.Value == nil {
			opt.ClearDeadline = true
		} else {
			opt.Deadline = input.Deadline.Value
		}
	}

	if input.Priority != nil {
		p := model.ParsePriority(*input.Priority)
		opt.Priority = &p
	}

	if input.Completed != nil {
		completed := *input.Completed
		opt.Completed = &completed
		switch {
		case !completed:
			opt.ClearCompletedAt = true
		case !current.IsCompleted():
			now := uc.now()
			opt.CompletedAt = &now
		}
	}

	return opt, nil
}

// Delete removes a task by id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	current, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if current.ID == "" {
		return task.ErrNotFound
	}

	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrNotFound
	}

	uc.invalidateAnalytics(ctx, current.Owner())
	return nil
}
