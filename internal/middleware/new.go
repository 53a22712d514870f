package middleware

import (
	"taskmint/config"
	"taskmint/pkg/jwt"
	"taskmint/pkg/log"
)

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*jwt.Claims, error)
}

type Middleware struct {
	l          log.Logger
	jwtManager TokenVerifier
	corsConfig config.CORSConfig
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager TokenVerifier, corsConfig config.CORSConfig, rateLimitConfig config.RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		corsConfig: corsConfig,
		limiter:    newRateLimiter(rateLimitConfig.RequestsPerMin),
	}
}
