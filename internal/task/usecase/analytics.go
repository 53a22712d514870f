package usecase

import (
	"context"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/internal/task/analytics"
	"taskmint/internal/task/repository"
)

// Analytics returns the owner's completion report, served from the cache
// when a fresh one is available.
func (uc *implUseCase) Analytics(ctx context.Context, input task.AnalyticsInput) (task.AnalyticsOutput, error) {
	if !input.Owner.Valid() {
		return task.AnalyticsOutput{}, task.ErrOwnerRequired
	}

	now := uc.now()
	key, cached := uc.reportKey(ctx, input.Owner, now)
	if cached {
		if report, ok := uc.cache.GetReport(ctx, key); ok {
			return task.AnalyticsOutput{Report: report}, nil
		}
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:   input.Owner.UserID,
		UserType: input.Owner.UserType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analytics ListTasks: %v", err)
		return task.AnalyticsOutput{}, err
	}

	report := analytics.Compute(tasks, now, uc.dateMath.Location())
	if cached {
		uc.cache.SetReport(ctx, key, report)
	}
	return task.AnalyticsOutput{Report: report}, nil
}

// reportKey reads the generation before the tasks are listed, so a report
// computed concurrently with a write lands under a generation nobody reads.
func (uc *implUseCase) reportKey(ctx context.Context, owner model.Owner, now time.Time) (repository.ReportKey, bool) {
	if uc.cache == nil {
		return repository.ReportKey{}, false
	}
	gen, ok := uc.cache.Generation(ctx, owner)
	if !ok {
		return repository.ReportKey{}, false
	}
	return repository.ReportKey{
		Owner:      owner,
		Period:     now.In(uc.dateMath.Location()).Format("2006-01"),
		Generation: gen,
	}, true
}

func (uc *implUseCase) invalidateAnalytics(ctx context.Context, owner model.Owner) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, owner)
	}
}
