package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmint/internal/middleware"
)

// RefreshTokenCookie holds the refresh token issued on login.
const RefreshTokenCookie = "refreshToken"

func (h *handler) setAuthCookies(c *gin.Context, access, refresh string) {
	h.setCookie(c, middleware.AccessTokenCookie, access, h.cookie.AccessTTL)
	h.setCookie(c, RefreshTokenCookie, refresh, h.cookie.RefreshTTL)
}

func (h *handler) clearAuthCookies(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -time.Second)
	h.setCookie(c, RefreshTokenCookie, "", -time.Second)
}

func (h *handler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(ttl.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, h.cookie.HTTPOnly)
}
