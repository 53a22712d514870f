package model

import "time"

// User is an account that owns tasks.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	Password     string // bcrypt hash, empty for gmail users
	UserType     UserType
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Scope is the authenticated identity attached to a request.
type Scope struct {
	UserID   string
	Email    string
	UserType UserType
}
