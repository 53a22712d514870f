package usecase

import (
	"taskmint/internal/user/repository"
	"taskmint/pkg/encrypter"
	"taskmint/pkg/google"
	"taskmint/pkg/jwt"
	pkgLog "taskmint/pkg/log"
)

// TokenIssuer signs access and refresh tokens.
type TokenIssuer interface {
	GenerateAccessToken(p jwt.Payload) (string, error)
	GenerateRefreshToken(userID string) (string, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	encrypter encrypter.Encrypter
	tokens    TokenIssuer
	google    google.IUserInfo
}

// New creates a new user UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	enc encrypter.Encrypter,
	tokens TokenIssuer,
	googleClient google.IUserInfo,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		encrypter: enc,
		tokens:    tokens,
		google:    googleClient,
	}
}
