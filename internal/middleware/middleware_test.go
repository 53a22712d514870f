package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskmint/config"
	"taskmint/internal/model"
	"taskmint/pkg/jwt"
	"taskmint/pkg/log"
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

type mockVerifier struct {
	valid string
}

func (m *mockVerifier) VerifyAccessToken(token string) (*jwt.Claims, error) {
	if token != m.valid {
		return nil, errors.New("bad token")
	}
	return &jwt.Claims{Payload: jwt.Payload{UserID: "u1", Email: "a@b.c", UserType: "gmail"}}, nil
}

func newTestMiddleware(perMin int) Middleware {
	return New(&mockLogger{}, &mockVerifier{valid: "good"}, config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}, config.RateLimitConfig{RequestsPerMin: perMin})
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(30)

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := GetScope(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, sc.UserID+"/"+string(sc.UserType))
	})

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{name: "no token", setup: func(r *http.Request) {}, wantCode: http.StatusUnauthorized},
		{name: "bad bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, wantCode: http.StatusUnauthorized},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, wantCode: http.StatusOK, wantBody: "u1/gmail"},
		{
			name:     "cookie",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "good"}) },
			wantCode: http.StatusOK,
			wantBody: "u1/gmail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuthWithoutVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, nil, config.CORSConfig{}, config.RateLimitConfig{})

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 20/min gives a burst of 2.
	mw := newTestMiddleware(20)

	r := gin.New()
	r.POST("/ai", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/ai", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("1.1.1.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("1.1.1.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := send("2.2.2.2"); code != http.StatusOK {
		t.Errorf("other clients must have their own bucket, got %d", code)
	}
}

func TestRateLimitIgnoresUntrustedForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(20)

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}
	r.POST("/ai", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/ai", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	send("1.1.1.1")
	send("2.2.2.2")
	if code := send("3.3.3.3"); code != http.StatusTooManyRequests {
		t.Errorf("rotating X-Forwarded-For must not reset the limit, got %d", code)
	}
}

func TestRateLimitTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(20)

	r := gin.New()
	if err := r.SetTrustedProxies([]string{"10.0.0.0/8"}); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}
	r.POST("/ai", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/ai", nil)
		req.RemoteAddr = "10.0.0.2:40000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	send("1.1.1.1")
	send("1.1.1.1")
	if code := send("2.2.2.2"); code != http.StatusOK {
		t.Errorf("clients behind a trusted proxy must have their own bucket, got %d", code)
	}
	if code := send("1.1.1.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
}

func TestNewRateLimiterBurst(t *testing.T) {
	if rl := newRateLimiter(5); rl.burst != 1 {
		t.Errorf("burst = %d, want 1", rl.burst)
	}
	if rl := newRateLimiter(0); rl.burst != DefaultRequestsPerMin/10 {
		t.Errorf("burst = %d, want %d", rl.burst, DefaultRequestsPerMin/10)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(30)

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "req-1" || w.Header().Get(RequestIDHeader) != "req-1" {
		t.Errorf("expected caller id to be reused, got body %q header %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() == "" || w.Body.String() != w.Header().Get(RequestIDHeader) {
		t.Errorf("expected generated id in context and header, got body %q header %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}
}

func TestScope(t *testing.T) {
	ctx := SetScope(context.Background(), model.Scope{UserID: "u1"})
	sc, ok := GetScope(ctx)
	if !ok || sc.UserID != "u1" {
		t.Errorf("unexpected scope %+v", sc)
	}
	if _, ok := GetScope(context.Background()); ok {
		t.Error("expected no scope on empty context")
	}
}
