package http

import (
	"time"

	"taskmint/internal/user"
	"taskmint/pkg/log"
)

// CookieConfig controls the auth cookies set on login.
type CookieConfig struct {
	Secure     bool
	HTTPOnly   bool
	Domain     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type handler struct {
	l      log.Logger
	uc     user.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase, cookie CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
