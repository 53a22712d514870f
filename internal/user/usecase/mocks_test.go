package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskmint/internal/model"
	"taskmint/internal/user/repository"
	"taskmint/pkg/google"
	"taskmint/pkg/jwt"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo keeps users in memory keyed by id.
type mockRepo struct {
	users  map[string]model.User
	nextID int
	err    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]model.User{}}
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	m.nextID++
	u := model.User{
		ID:       fmt.Sprintf("u%d", m.nextID),
		Username: opt.Username,
		Email:    opt.Email,
		FullName: opt.FullName,
		Password: opt.Password,
		UserType: opt.UserType,
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	for _, u := range m.users {
		if (opt.ID != "" && u.ID == opt.ID) ||
			(opt.Email != "" && u.Email == opt.Email) ||
			(opt.Username != "" && u.Username == opt.Username) {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (m *mockRepo) SetRefreshToken(ctx context.Context, id string, token string) error {
	if m.err != nil {
		return m.err
	}
	u, ok := m.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.RefreshToken = token
	m.users[id] = u
	return nil
}

type mockTokens struct {
	lastPayload jwt.Payload
	err         error
}

func (m *mockTokens) GenerateAccessToken(p jwt.Payload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.lastPayload = p
	return "access-" + p.UserID, nil
}

func (m *mockTokens) GenerateRefreshToken(userID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "refresh-" + userID, nil
}

// mockGoogle accepts a single token.
type mockGoogle struct {
	token string
	info  google.UserInfo
	err   error
}

func (m *mockGoogle) UserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	if accessToken != m.token {
		return nil, google.ErrInvalidToken
	}
	info := m.info
	return &info, nil
}
