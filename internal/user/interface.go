package user

import (
	"context"

	"taskmint/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	// Gmail signs in with a Google OAuth access token, creating the account on first use.
	Gmail(ctx context.Context, input GmailInput) (AuthOutput, error)
	// Logout revokes the stored refresh token of the caller.
	Logout(ctx context.Context, sc model.Scope) error
}
