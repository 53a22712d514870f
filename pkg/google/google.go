package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrInvalidToken is returned when Google rejects the access token.
var ErrInvalidToken = errors.New("google: invalid access token")

// UserInfo is the identity returned by the OAuth2 userinfo endpoint.
type UserInfo struct {
	ID            string
	Email         string
	Name          string
	Picture       string
	VerifiedEmail bool
}

// IUserInfo resolves a Google access token to the account behind it.
type IUserInfo interface {
	UserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}

// Config holds optional overrides. Endpoint replaces https://www.googleapis.com/.
type Config struct {
	Endpoint string
}

type userInfoImpl struct {
	cfg Config
}

// NewUserInfoClient creates a userinfo client.
func NewUserInfoClient(cfg Config) IUserInfo {
	return &userInfoImpl{cfg: cfg}
}

// UserInfo calls https://www.googleapis.com/oauth2/v2/userinfo with the token.
func (c *userInfoImpl) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.Endpoint))
	}

	svc, err := oauth2v2.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("google: create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && (gErr.Code == http.StatusUnauthorized || gErr.Code == http.StatusForbidden) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("google: userinfo: %w", err)
	}

	out := &UserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}
	if info.VerifiedEmail != nil {
		out.VerifiedEmail = *info.VerifiedEmail
	}
	if out.Email == "" {
		return nil, ErrInvalidToken
	}
	return out, nil
}
