package analytics

import (
	"math"
	"sort"
	"time"

	"taskmint/internal/model"
)

// Compute builds the report for a snapshot of one owner's tasks. Month and
// date grouping happen in loc (UTC when nil). It never fails: tasks with
// missing fields are skipped where they cannot contribute.
func Compute(tasks []model.Task, now time.Time, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}

	report := Report{
		TotalTasks:         len(tasks),
		PriorityAnalysis:   emptyPriorityAnalysis(),
		MonthlyData:        monthBuckets(now.In(loc)),
		CompletionTimeline: []TimelinePoint{},
		RecentCompletions:  []RecentCompletion{},
	}

	monthIndex := make(map[string]int, len(report.MonthlyData))
	for i, b := range report.MonthlyData {
		monthIndex[b.Month] = i
	}

	var completed []RecentCompletion
	timeline := make(map[string]int)
	var latencySum float64

	for _, t := range tasks {
		done := t.IsCompleted()

		p := t.Priority
		if !p.Valid() {
			p = model.PriorityMedium
		}
		pb := report.PriorityAnalysis[p]
		pb.Total++
		if done {
			pb.Completed++
		}
		report.PriorityAnalysis[p] = pb

		if !t.CreatedAt.IsZero() {
			if i, ok := monthIndex[t.CreatedAt.In(loc).Format(monthLabelLayout)]; ok {
				report.MonthlyData[i].Created++
			}
		}

		if !done {
			continue
		}

		completedAt := t.CompletedAt.In(loc)
		if i, ok := monthIndex[completedAt.Format(monthLabelLayout)]; ok {
			report.MonthlyData[i].Completed++
		}
		timeline[completedAt.Format(dateKeyLayout)]++

		hours := round(t.CompletedAt.Sub(t.CreatedAt).Hours(), 2)
		latencySum += hours
		completed = append(completed, RecentCompletion{Task: t, CompletionTimeHours: hours})
	}

	report.CompletedTasks = len(completed)
	if report.TotalTasks > 0 {
		report.CompletionRate = round(float64(report.CompletedTasks)/float64(report.TotalTasks)*100, 1)
	}
	if len(completed) > 0 {
		report.AvgCompletionTimeHours = round(latencySum/float64(len(completed)), 2)
	}

	for date, count := range timeline {
		report.CompletionTimeline = append(report.CompletionTimeline, TimelinePoint{Date: date, Count: count})
	}
	sort.Slice(report.CompletionTimeline, func(i, j int) bool {
		return report.CompletionTimeline[i].Date < report.CompletionTimeline[j].Date
	})

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Task.CompletedAt.After(*completed[j].Task.CompletedAt)
	})
	if len(completed) > RecentLimit {
		completed = completed[:RecentLimit]
	}
	report.RecentCompletions = append(report.RecentCompletions, completed...)

	return report
}

func emptyPriorityAnalysis() map[model.Priority]PriorityBreakdown {
	m := make(map[model.Priority]PriorityBreakdown, len(model.Priorities))
	for _, p := range model.Priorities {
		m[p] = PriorityBreakdown{}
	}
	return m
}

// monthBuckets returns the current month and the five before it, oldest first.
func monthBuckets(now time.Time) []MonthBucket {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]MonthBucket, 0, MonthWindow)
	for i := MonthWindow - 1; i >= 0; i-- {
		buckets = append(buckets, MonthBucket{Month: first.AddDate(0, -i, 0).Format(monthLabelLayout)})
	}
	return buckets
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
