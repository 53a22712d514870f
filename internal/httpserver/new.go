package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"taskmint/config"
	taskUC "taskmint/internal/task/usecase"
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

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cors        config.CORSConfig
	rateLimit   config.RateLimitConfig

	// Storage
	mongo        *pkgMongo.Client
	redis        pkgRedis.IRedis
	analyticsTTL time.Duration

	// Extraction pipeline
	llm        *llmprovider.Manager
	langflow   langflow.ILangFlow
	dateMath   *datemath.Parser
	taskConfig taskUC.Config

	// Auth
	jwtManager *jwt.Manager
	encrypter  encrypter.Encrypter
	google     google.IUserInfo
	cookie     config.CookieConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	TrustedProxies []string
	CORS           config.CORSConfig
	RateLimit      config.RateLimitConfig

	// Storage. Redis is optional.
	Mongo        *pkgMongo.Client
	Redis        pkgRedis.IRedis
	AnalyticsTTL time.Duration

	// Extraction pipeline. Unconfigured clients make their endpoints
	// answer with a configuration error.
	LLM        *llmprovider.Manager
	LangFlow   langflow.ILangFlow
	DateMath   *datemath.Parser
	TaskConfig taskUC.Config

	// Auth. A nil JWTManager disables the auth routes.
	JWTManager *jwt.Manager
	Encrypter  encrypter.Encrypter
	Google     google.IUserInfo
	Cookie     config.CookieConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		cors:         cfg.CORS,
		rateLimit:    cfg.RateLimit,
		mongo:        cfg.Mongo,
		redis:        cfg.Redis,
		analyticsTTL: cfg.AnalyticsTTL,
		llm:          cfg.LLM,
		langflow:     cfg.LangFlow,
		dateMath:     cfg.DateMath,
		taskConfig:   cfg.TaskConfig,
		jwtManager:   cfg.JWTManager,
		encrypter:    cfg.Encrypter,
		google:       cfg.Google,
		cookie:       cfg.Cookie,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Client IPs feed the rate limiter, so forwarding headers are only
	// honoured from the listed proxies.
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mongo == nil {
		return errors.New("mongo is required")
	}
	if srv.langflow == nil {
		return errors.New("langflow client is required")
	}
	if srv.jwtManager != nil && (srv.encrypter == nil || srv.google == nil) {
		return errors.New("encrypter and google client are required with jwt")
	}
	return nil
}
