package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskmint/config"
	"taskmint/internal/middleware"
	"taskmint/internal/model"
	"taskmint/internal/user"
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
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	err      error
	loginIn  user.LoginInput
	logoutSc model.Scope
}

var testUser = model.User{
	ID:           "u1",
	Username:     "jane",
	Email:        "jane@example.com",
	FullName:     "Jane Doe",
	Password:     "$2a$hash",
	RefreshToken: "refresh-u1",
	UserType:     model.UserTypeCustom,
}

func (m *mockUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	if m.err != nil {
		return user.RegisterOutput{}, m.err
	}
	return user.RegisterOutput{User: testUser}, nil
}

func (m *mockUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	m.loginIn = input
	if m.err != nil {
		return user.AuthOutput{}, m.err
	}
	return user.AuthOutput{User: testUser, AccessToken: "access-u1", RefreshToken: "refresh-u1"}, nil
}

func (m *mockUseCase) Gmail(ctx context.Context, input user.GmailInput) (user.AuthOutput, error) {
	if m.err != nil {
		return user.AuthOutput{}, m.err
	}
	return user.AuthOutput{User: testUser, AccessToken: "access-u1", RefreshToken: "refresh-u1"}, nil
}

func (m *mockUseCase) Logout(ctx context.Context, sc model.Scope) error {
	m.logoutSc = sc
	return m.err
}

func newTestManager(t *testing.T) *jwt.Manager {
	t.Helper()
	m, err := jwt.New(jwt.Config{AccessSecret: "a", RefreshSecret: "r"})
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	return m
}

func newTestRouter(uc *mockUseCase, verifier middleware.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc, CookieConfig{HTTPOnly: true, AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour})
	mw := middleware.New(&mockLogger{}, verifier, config.CORSConfig{}, config.RateLimitConfig{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/auth"), h, mw)
	return r
}

func do(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func jsonReq(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestTestHandler(t *testing.T) {
	w, _ := do(newTestRouter(&mockUseCase{}, nil), httptest.NewRequest(http.MethodGet, "/api/v1/auth/test", nil))
	if w.Code != http.StatusOK || w.Body.String() != "auth api is working" {
		t.Errorf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "missing fields", body: `{"email":"jane@example.com"}`, wantCode: http.StatusBadRequest, wantMessage: "All fields are required"},
		{name: "exists", body: `{"fullName":"J","email":"j@x.io","password":"p","username":"j"}`, err: user.ErrUserExists, wantCode: http.StatusBadRequest, wantMessage: "User already exists"},
		{name: "store failure", body: `{"fullName":"J","email":"j@x.io","password":"p","username":"j"}`, err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantMessage: msgRegisterFailed},
		{name: "created", body: `{"fullName":"J","email":"j@x.io","password":"p","username":"j"}`, wantCode: http.StatusCreated, wantMessage: "User registered successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(newTestRouter(&mockUseCase{err: tt.err}, nil), jsonReq(http.MethodPost, "/api/v1/auth/register", tt.body))
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	t.Run("sets cookies and hides credentials", func(t *testing.T) {
		uc := &mockUseCase{}
		w, body := do(newTestRouter(uc, nil), jsonReq(http.MethodPost, "/api/v1/auth/login", `{"username":"jane","password":"p"}`))
		if w.Code != http.StatusOK || body["accessToken"] != "access-u1" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
		if uc.loginIn.Username != "jane" {
			t.Errorf("username = %q", uc.loginIn.Username)
		}

		u, _ := body["user"].(map[string]any)
		if _, ok := u["password"]; ok {
			t.Error("password must not be exposed")
		}
		if _, ok := u["refreshToken"]; ok {
			t.Error("refreshToken must not be exposed")
		}

		access := cookieNamed(w, middleware.AccessTokenCookie)
		if access == nil || access.Value != "access-u1" || !access.HttpOnly || access.MaxAge != 3600 {
			t.Errorf("unexpected access cookie %+v", access)
		}
		if refresh := cookieNamed(w, RefreshTokenCookie); refresh == nil || refresh.Value != "refresh-u1" {
			t.Errorf("unexpected refresh cookie %+v", refresh)
		}
	})

	errCases := []struct {
		err  error
		code int
	}{
		{user.ErrEmailNotFound, http.StatusNotFound},
		{user.ErrUsernameNotFound, http.StatusNotFound},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
	}
	for _, tc := range errCases {
		w, _ := do(newTestRouter(&mockUseCase{err: tc.err}, nil), jsonReq(http.MethodPost, "/api/v1/auth/login", `{"email":"a@b.c","password":"p"}`))
		if w.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
		}
	}

	w, body := do(newTestRouter(&mockUseCase{}, nil), jsonReq(http.MethodPost, "/api/v1/auth/login", `{"password":"p"}`))
	if w.Code != http.StatusBadRequest || body["message"] != "All fields are required" {
		t.Errorf("unexpected response %d %v", w.Code, body)
	}
}

func TestGmailHandler(t *testing.T) {
	w, body := do(newTestRouter(&mockUseCase{}, nil), jsonReq(http.MethodPost, "/api/v1/auth/gmail", `{}`))
	if w.Code != http.StatusBadRequest || body["message"] != "Gmail token is required" {
		t.Errorf("unexpected response %d %v", w.Code, body)
	}

	w, body = do(newTestRouter(&mockUseCase{err: user.ErrInvalidGmailToken}, nil), jsonReq(http.MethodPost, "/api/v1/auth/gmail", `{"gmailToken":"x"}`))
	if w.Code != http.StatusUnauthorized || body["message"] != "Invalid Gmail token" {
		t.Errorf("unexpected response %d %v", w.Code, body)
	}

	w, body = do(newTestRouter(&mockUseCase{}, nil), jsonReq(http.MethodPost, "/api/v1/auth/gmail", `{"gmailToken":"x"}`))
	if w.Code != http.StatusOK || body["message"] != "Gmail authentication successful" {
		t.Errorf("unexpected response %d %v", w.Code, body)
	}
}

func TestLogoutHandler(t *testing.T) {
	manager := newTestManager(t)

	t.Run("requires a token", func(t *testing.T) {
		w, _ := do(newTestRouter(&mockUseCase{}, manager), httptest.NewRequest(http.MethodGet, "/api/v1/auth/logout", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("clears cookies", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(jwt.Payload{UserID: "u1", Email: "jane@example.com", UserType: "custom"})
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		uc := &mockUseCase{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})

		w, body := do(newTestRouter(uc, manager), req)
		if w.Code != http.StatusOK || body["message"] != "User logged out successfully" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
		if uc.logoutSc.UserID != "u1" {
			t.Errorf("scope = %+v", uc.logoutSc)
		}
		if c := cookieNamed(w, RefreshTokenCookie); c == nil || c.MaxAge >= 0 {
			t.Errorf("refresh cookie was not cleared: %+v", c)
		}
	})
}
