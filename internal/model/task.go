package model

import (
	"strings"
	"time"
)

// Priority is one of low, medium, high or urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority in ascending order of urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority matches case-insensitively; anything else becomes medium.
func ParsePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of work owned by one user.
type Task struct {
	ID            string
	Title         string
	Description   string
	Deadline      *time.Time
	EstimatedTime string
	Priority      Priority
	Completed     bool
	CompletedAt   *time.Time
	UserID        string
	UserType      UserType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Owner returns the task's owner pair.
func (t Task) Owner() Owner {
	return Owner{UserID: t.UserID, UserType: t.UserType}
}

// IsCompleted is true only when the completed flag and completedAt agree.
func (t Task) IsCompleted() bool {
	return t.Completed && t.CompletedAt != nil
}
