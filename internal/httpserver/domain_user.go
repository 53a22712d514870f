package httpserver

import (
	"context"

	"taskmint/internal/middleware"
	userHTTP "taskmint/internal/user/delivery/http"
	userMongo "taskmint/internal/user/repository/mongo"
	userUC "taskmint/internal/user/usecase"
)

// setupUserDomain wires the user domain and registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, mw middleware.Middleware) error {
	repo := userMongo.New(srv.mongo.Database(), srv.l)

	uc := userUC.New(srv.l, repo, srv.encrypter, srv.jwtManager, srv.google)

	h := userHTTP.New(srv.l, uc, userHTTP.CookieConfig{
		Secure:     srv.cookie.Secure,
		HTTPOnly:   srv.cookie.HTTPOnly,
		Domain:     srv.cookie.Domain,
		AccessTTL:  srv.jwtManager.AccessTTL(),
		RefreshTTL: srv.jwtManager.RefreshTTL(),
	})

	userHTTP.RegisterRoutes(srv.gin.Group("/api/v1/auth"), h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
