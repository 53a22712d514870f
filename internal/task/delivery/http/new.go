package http

import (
	"time"

	"taskmint/internal/task"
	"taskmint/pkg/datemath"
	"taskmint/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       task.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new HTTP handler for the task domain. dateMath reads the
// deadline and today fields of request bodies.
func New(l log.Logger, uc task.UseCase, dateMath *datemath.Parser) *handler {
	if dateMath == nil {
		dateMath, _ = datemath.NewParser("")
	}
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		now:      time.Now,
	}
}
