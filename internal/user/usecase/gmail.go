package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/user"
	"taskmint/internal/user/repository"
	"taskmint/pkg/google"
)

// Gmail resolves the Google identity behind the token and signs it in.
func (uc *implUseCase) Gmail(ctx context.Context, input user.GmailInput) (user.AuthOutput, error) {
	token := strings.TrimSpace(input.GmailToken)
	if token == "" {
		return user.AuthOutput{}, user.ErrGmailTokenRequired
	}

	info, err := uc.google.UserInfo(ctx, token)
	if errors.Is(err, google.ErrInvalidToken) {
		return user.AuthOutput{}, user.ErrInvalidGmailToken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Gmail UserInfo: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: info.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Gmail GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}

	if u.ID == "" {
		localPart := emailLocalPart(info.Email)
		fullName := strings.TrimSpace(info.Name)
		if fullName == "" {
			fullName = localPart
		}

		u, err = uc.repo.CreateUser(ctx, repository.CreateUserOptions{
			Username: localPart,
			Email:    info.Email,
			FullName: fullName,
			UserType: model.UserTypeGmail,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Gmail CreateUser: %v", err)
			return user.AuthOutput{}, err
		}
		uc.l.Infof(ctx, "Gmail: created user id=%s", u.ID)
	}

	return uc.issueTokens(ctx, u)
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
