package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrMissingSecret = errors.New("jwt: signing secret is required")
)

// Payload is the identity carried by an access token.
type Payload struct {
	UserID   string `json:"id"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"userType,omitempty"`
}

// Claims are the registered claims plus the identity payload.
type Claims struct {
	Payload
	gojwt.RegisteredClaims
}

// Config holds signing secrets and lifetimes for both token kinds.
type Config struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// Manager issues and verifies HS256 tokens.
type Manager struct {
	cfg Config
	now func() time.Time
}

// New creates a Manager. Both secrets are required.
func New(cfg Config) (*Manager, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 10 * 24 * time.Hour
	}
	return &Manager{cfg: cfg, now: time.Now}, nil
}

// AccessTTL returns the access token lifetime.
func (m *Manager) AccessTTL() time.Duration { return m.cfg.AccessTTL }

// RefreshTTL returns the refresh token lifetime.
func (m *Manager) RefreshTTL() time.Duration { return m.cfg.RefreshTTL }

// GenerateAccessToken signs an access token carrying the full payload.
func (m *Manager) GenerateAccessToken(p Payload) (string, error) {
	return m.sign(p, m.cfg.AccessSecret, m.cfg.AccessTTL)
}

// GenerateRefreshToken signs a refresh token carrying only the user id.
func (m *Manager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(Payload{UserID: userID}, m.cfg.RefreshSecret, m.cfg.RefreshTTL)
}

// VerifyAccessToken parses and validates an access token.
func (m *Manager) VerifyAccessToken(token string) (*Claims, error) {
	return m.verify(token, m.cfg.AccessSecret)
}

// VerifyRefreshToken parses and validates a refresh token.
func (m *Manager) VerifyRefreshToken(token string) (*Claims, error) {
	return m.verify(token, m.cfg.RefreshSecret)
}

func (m *Manager) sign(p Payload, secret string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Payload: p,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) verify(token, secret string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		return []byte(secret), nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
