package usecase

import (
	"context"

	"taskmint/internal/model"
	"taskmint/internal/user"
)

// Logout revokes the stored refresh token.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.UserID == "" {
		return user.ErrUserNotFound
	}
	if err := uc.repo.SetRefreshToken(ctx, sc.UserID, ""); err != nil {
		uc.l.Errorf(ctx, "uc.Logout SetRefreshToken: %v", err)
		return err
	}
	return nil
}
