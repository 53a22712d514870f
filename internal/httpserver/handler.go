package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskmint/internal/middleware"
	"taskmint/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.newMiddleware()

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) newMiddleware() middleware.Middleware {
	var verifier middleware.TokenVerifier
	if srv.jwtManager != nil {
		verifier = srv.jwtManager
	}
	return middleware.New(srv.l, verifier, srv.cors, srv.rateLimit)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.CORS())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.cors.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/api/v1/health", srv.apiHealthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupTaskDomain(ctx, mw); err != nil {
		return err
	}

	if srv.jwtManager != nil {
		if err := srv.setupUserDomain(ctx, mw); err != nil {
			return err
		}
	} else {
		srv.l.Warnf(ctx, "JWT secrets not configured, skipping auth routes")
	}

	return nil
}
