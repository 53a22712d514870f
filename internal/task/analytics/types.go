package analytics

import "taskmint/internal/model"

const (
	// MonthWindow is the number of trailing calendar months in the monthly series.
	MonthWindow = 6

	// RecentLimit caps the recent completions list.
	RecentLimit = 10

	monthLabelLayout = "Jan 2006"
	dateKeyLayout    = "2006-01-02"
)

// Report is the derived statistics over one owner's tasks.
type Report struct {
	TotalTasks             int                                  `json:"totalTasks"`
	CompletedTasks         int                                  `json:"completedTasks"`
	CompletionRate         float64                              `json:"completionRate"`
	AvgCompletionTimeHours float64                              `json:"avgCompletionTimeHours"`
	PriorityAnalysis       map[model.Priority]PriorityBreakdown `json:"priorityAnalysis"`
	MonthlyData            []MonthBucket                        `json:"monthlyData"`
	CompletionTimeline     []TimelinePoint                      `json:"completionTimeline"`
	RecentCompletions      []RecentCompletion                   `json:"recentCompletions"`
}

// PriorityBreakdown counts tasks of one priority.
type PriorityBreakdown struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// MonthBucket counts tasks created and completed in one calendar month.
type MonthBucket struct {
	Month     string `json:"month"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// TimelinePoint counts completions on one calendar date.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RecentCompletion is a completed task with its completion latency.
type RecentCompletion struct {
	Task                model.Task `json:"task"`
	CompletionTimeHours float64    `json:"completionTimeHours"`
}
