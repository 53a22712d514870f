package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailNotFound      = errors.New("email not found")
	ErrUsernameNotFound   = errors.New("username not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGmailTokenRequired = errors.New("gmail token is required")
	ErrInvalidGmailToken  = errors.New("invalid gmail token")
	ErrUserNotFound       = errors.New("user not found")
)
