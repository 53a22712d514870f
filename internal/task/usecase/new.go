package usecase

import (
	"time"

	"taskmint/internal/task/repository"
	"taskmint/pkg/datemath"
	"taskmint/pkg/langflow"
	"taskmint/pkg/llmprovider"
	pkgLog "taskmint/pkg/log"
)

const (
	// DefaultTemperature and DefaultMaxTokens apply to the voice prompt when
	// Config leaves them unset.
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 300
)

// Config tunes the voice extraction request.
type Config struct {
	Temperature float64
	MaxTokens   int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	cache    repository.AnalyticsCache
	llm      *llmprovider.Manager
	langflow langflow.ILangFlow
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new task UseCase instance.
// cache may be nil, in which case analytics are computed on every call.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	cache repository.AnalyticsCache,
	llm *llmprovider.Manager,
	lf langflow.ILangFlow,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if dateMath == nil {
		dateMath, _ = datemath.NewParser("")
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		cache:    cache,
		llm:      llm,
		langflow: lf,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
