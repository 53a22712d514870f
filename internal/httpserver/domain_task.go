package httpserver

import (
	"context"

	"taskmint/internal/middleware"
	taskHTTP "taskmint/internal/task/delivery/http"
	"taskmint/internal/task/repository"
	taskMongo "taskmint/internal/task/repository/mongo"
	taskRedis "taskmint/internal/task/repository/redis"
	taskUC "taskmint/internal/task/usecase"
)

// setupTaskDomain wires the task domain and registers /api/tasks and /langflow.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskMongo.New(srv.mongo.Database(), srv.l)

	var cache repository.AnalyticsCache
	if srv.redis != nil {
		cache = taskRedis.New(srv.redis, srv.analyticsTTL, srv.l)
	} else {
		srv.l.Infof(ctx, "Redis not configured, analytics cache disabled")
	}

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, cache, srv.llm, srv.langflow, srv.dateMath, srv.taskConfig)

	if !srv.llm.Configured() {
		srv.l.Warnf(ctx, "No LLM provider configured, voice parsing will answer 500")
	}
	if !srv.langflow.Configured() {
		srv.l.Warnf(ctx, "LangFlow not configured, document extraction will answer 500")
	}

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes
	taskHTTP.RegisterRoutes(srv.gin.Group("/api"), h, mw)
	taskHTTP.RegisterLangFlowRoutes(srv.gin.Group("/langflow"), h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
