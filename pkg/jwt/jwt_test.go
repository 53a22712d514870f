package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{AccessSecret: "access", RefreshSecret: "refresh", AccessTTL: time.Hour, RefreshTTL: 2 * time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewRequiresSecrets(t *testing.T) {
	if _, err := New(Config{AccessSecret: "a"}); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)
	token, err := m.GenerateAccessToken(Payload{UserID: "u1", Email: "a@b.c", UserType: "custom"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@b.c" || claims.UserType != "custom" || claims.Subject != "u1" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := m.VerifyRefreshToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token must not verify as refresh token, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)
	token, err := m.GenerateRefreshToken("u2")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := m.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if claims.UserID != "u2" || claims.Email != "" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestExpiredToken(t *testing.T) {
	m := newTestManager(t)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	token, _ := m.GenerateAccessToken(Payload{UserID: "u1"})

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := m.VerifyAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected expired token to be rejected, got %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.VerifyAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
