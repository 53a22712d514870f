package repository

import "taskmint/internal/model"

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Username string
	Email    string
	FullName string
	Password string // already hashed
	UserType model.UserType
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// Non-empty fields are OR-ed, so one call can look up by email or username.
type GetOneUserOptions struct {
	ID       string
	Email    string
	Username string
}
