package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/user"
	"taskmint/internal/user/repository"
)

// Register creates a password account. Email and username must be unused.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if fullName == "" || email == "" || username == "" || strings.TrimSpace(input.Password) == "" {
		return user.RegisterOutput{}, user.ErrFieldsRequired
	}

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email, Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrUserExists
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register HashPassword: %v", err)
		return user.RegisterOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: hash,
		UserType: model.UserTypeCustom,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return user.RegisterOutput{}, user.ErrUserExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{User: u}, nil
}
