package user

import "taskmint/internal/model"

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Username string
}

type RegisterOutput struct {
	User model.User
}

// LoginInput identifies the account by email, or by username when email is empty.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

type GmailInput struct {
	GmailToken string
}

// AuthOutput is the result of a successful login.
type AuthOutput struct {
	User         model.User
	AccessToken  string
	RefreshToken string
}
