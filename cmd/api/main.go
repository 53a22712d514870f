package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmint/config"
	_ "taskmint/docs" // Swagger docs
	"taskmint/internal/httpserver"
	taskMongo "taskmint/internal/task/repository/mongo"
	taskUC "taskmint/internal/task/usecase"
	userMongo "taskmint/internal/user/repository/mongo"
	"taskmint/pkg/datemath"
	"taskmint/pkg/encrypter"
	"taskmint/pkg/google"
	"taskmint/pkg/jwt"
	"taskmint/pkg/langflow"
	"taskmint/pkg/llmprovider"
	"taskmint/pkg/log"
	pkgMongo "taskmint/pkg/mongo"
	pkgRedis "taskmint/pkg/redis"
)

const bcryptCost = 10

// @title       TaskMint API
// @description Task management with voice and document task extraction, analytics and JWT auth.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskMint...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	mongoClient, err := pkgMongo.Connect(ctx, pkgMongo.Config{
		URI:                    cfg.Mongo.URI,
		Database:               cfg.Mongo.Database,
		MaxPoolSize:            cfg.Mongo.MaxPoolSize,
		ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout,
		SocketTimeout:          cfg.Mongo.SocketTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warnf(ctx, "MongoDB disconnect: %v", err)
		}
	}()
	logger.Infof(ctx, "Connected to MongoDB database %s", cfg.Mongo.Database)

	if err := mongoClient.EnsureIndexes(ctx, taskMongo.CollectionName, taskMongo.Indexes()); err != nil {
		logger.Warnf(ctx, "Task indexes: %v", err)
	}
	if err := mongoClient.EnsureIndexes(ctx, userMongo.CollectionName, userMongo.Indexes()); err != nil {
		logger.Warnf(ctx, "User indexes: %v", err)
	}

	// 4. Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Addr != "" {
		redisClient, err = pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis not available, analytics cache disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Infof(ctx, "Connected to Redis at %s", cfg.Redis.Addr)
		}
	}

	// 5. Extraction pipeline
	providers, err := llmprovider.InitializeProviders(ctx, logger, &cfg.LLM)
	if err != nil && !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		logger.Warnf(ctx, "LLM providers: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	langflowClient := langflow.New(langflow.Config{
		APIKey:  cfg.LangFlow.APIKey,
		URL:     cfg.LangFlow.URL,
		Timeout: cfg.LangFlow.Timeout,
	})

	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dateMathParser, _ = datemath.NewParser("")
	}

	// 6. Auth (optional)
	jwtManager, err := jwt.New(jwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshSecret: cfg.JWT.RefreshSecret,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Warnf(ctx, "Auth disabled: %v", err)
		jwtManager = nil
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		Mongo:          mongoClient,
		Redis:          redisClient,
		AnalyticsTTL:   cfg.Redis.AnalyticsTTL,
		LLM:            llmManager,
		LangFlow:       langflowClient,
		DateMath:       dateMathParser,
		TaskConfig: taskUC.Config{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		JWTManager: jwtManager,
		Encrypter:  encrypter.New(bcryptCost),
		Google:     google.NewUserInfoClient(google.Config{}),
		Cookie:     cfg.Cookie,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(ctx context.Context, l log.Logger, key, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		l.Warnf(ctx, "Invalid %s %q, using %s: %v", key, value, fallback, err)
		return fallback
	}
	return d
}
