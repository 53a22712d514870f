package repository

import (
	"context"

	"taskmint/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns a zero-value User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	// SetRefreshToken stores the token; an empty token unsets it.
	SetRefreshToken(ctx context.Context, id string, token string) error
}
