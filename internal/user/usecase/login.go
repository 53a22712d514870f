package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/user"
	"taskmint/internal/user/repository"
	"taskmint/pkg/encrypter"
	"taskmint/pkg/jwt"
)

// Login checks a password account and issues a token pair.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if (email == "" && username == "") || input.Password == "" {
		return user.AuthOutput{}, user.ErrFieldsRequired
	}

	opt := repository.GetOneUserOptions{Email: email}
	notFound := user.ErrEmailNotFound
	if email == "" {
		opt = repository.GetOneUserOptions{Username: username}
		notFound = user.ErrUsernameNotFound
	}

	u, err := uc.repo.GetOneUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, notFound
	}

	// Google accounts have no password to check.
	if u.UserType != model.UserTypeCustom || u.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := uc.encrypter.ComparePassword(u.Password, input.Password); err != nil {
		if !errors.Is(err, encrypter.ErrMismatch) {
			uc.l.Warnf(ctx, "uc.Login ComparePassword: %v", err)
		}
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issueTokens(ctx, u)
}

// issueTokens signs a token pair and stores the refresh token on the user.
func (uc *implUseCase) issueTokens(ctx context.Context, u model.User) (user.AuthOutput, error) {
	access, err := uc.tokens.GenerateAccessToken(jwt.Payload{
		UserID:   u.ID,
		Email:    u.Email,
		UserType: string(u.UserType),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens GenerateAccessToken: %v", err)
		return user.AuthOutput{}, err
	}

	refresh, err := uc.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens GenerateRefreshToken: %v", err)
		return user.AuthOutput{}, err
	}

	if err := uc.repo.SetRefreshToken(ctx, u.ID, refresh); err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens SetRefreshToken: %v", err)
		return user.AuthOutput{}, err
	}
	u.RefreshToken = refresh

	return user.AuthOutput{User: u, AccessToken: access, RefreshToken: refresh}, nil
}
