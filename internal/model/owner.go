package model

import "strings"

// UserType distinguishes password accounts from Google accounts.
type UserType string

const (
	UserTypeCustom UserType = "custom"
	UserTypeGmail  UserType = "gmail"
)

// ParseUserType accepts "custom" or "gmail", case-insensitively.
func ParseUserType(s string) (UserType, bool) {
	switch UserType(strings.ToLower(strings.TrimSpace(s))) {
	case UserTypeCustom:
		return UserTypeCustom, true
	case UserTypeGmail:
		return UserTypeGmail, true
	default:
		return "", false
	}
}

// Owner is the composite reference every task query is scoped by.
type Owner struct {
	UserID   string
	UserType UserType
}

// Valid reports whether both parts of the owner are set.
func (o Owner) Valid() bool {
	return o.UserID != "" && (o.UserType == UserTypeCustom || o.UserType == UserTypeGmail)
}
