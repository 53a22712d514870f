package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskmint/internal/model"
	"taskmint/pkg/response"
)

// AccessTokenCookie is the cookie the access token is issued in.
const AccessTokenCookie = "accessToken"

// Auth requires a valid access token from the accessToken cookie or an
// "Authorization: Bearer" header, and stores the caller's scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := extractToken(c)
		if token == "" || m.jwtManager == nil {
			response.Unauthorized(c)
			return
		}

		claims, err := m.jwtManager.VerifyAccessToken(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{
			UserID:   claims.UserID,
			Email:    claims.Email,
			UserType: model.UserType(claims.UserType),
		}
		c.Request = c.Request.WithContext(SetScope(ctx, sc))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
