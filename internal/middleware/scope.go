package middleware

import (
	"context"

	"taskmint/internal/model"
)

type scopeKey struct{}

// SetScope returns a copy of ctx carrying the authenticated identity.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the identity stored by Auth.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok
}
