package http

import (
	"errors"
	"net/http"

	"taskmint/internal/user"
	pkgErrors "taskmint/pkg/errors"
)

var (
	errInvalidBody        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errFieldsRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "All fields are required")
	errUserExists         = pkgErrors.NewHTTPError(http.StatusBadRequest, "User already exists")
	errGmailTokenRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Gmail token is required")
	errEmailNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "Email not found")
	errUsernameNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Username not found")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errInvalidGmailToken  = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid Gmail token")
)

const (
	msgRegisterFailed = "Error registering user"
	msgLoginFailed    = "Error logging in"
	msgGmailFailed    = "Error authenticating with Gmail"
	msgLogoutFailed   = "Error logging out"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, user.ErrFieldsRequired):
		return errFieldsRequired
	case errors.Is(err, user.ErrUserExists):
		return errUserExists
	case errors.Is(err, user.ErrGmailTokenRequired):
		return errGmailTokenRequired
	case errors.Is(err, user.ErrEmailNotFound):
		return errEmailNotFound
	case errors.Is(err, user.ErrUsernameNotFound):
		return errUsernameNotFound
	case errors.Is(err, user.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, user.ErrInvalidGmailToken):
		return errInvalidGmailToken
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, fallback)
	}
}
