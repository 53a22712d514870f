package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskmint/pkg/langflow"
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

type fakeRedis struct {
	pingErr error
}

func (f *fakeRedis) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (f *fakeRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (f *fakeRedis) Del(ctx context.Context, keys ...string) error        { return nil }
func (f *fakeRedis) Incr(ctx context.Context, key string) (int64, error) { return 1, nil }
func (f *fakeRedis) Ping(ctx context.Context) error                      { return f.pingErr }
func (f *fakeRedis) Close() error                                        { return nil }

func newTestServer(redisPingErr error) HTTPServer {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{
		gin: gin.New(),
		l:   &mockLogger{},
	}
	if redisPingErr != nil {
		srv.redis = &fakeRedis{pingErr: redisPingErr}
	}
	srv.registerSystemRoutes()
	return srv
}

func get(srv HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(nil)

	w := get(srv, "/")
	if w.Code != http.StatusOK || w.Body.String() != RootMessage {
		t.Errorf("root: %d %q", w.Code, w.Body.String())
	}

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := get(srv, path); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w = get(srv, "/api/v1/health")
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "OK" || body["message"] != HealthMessage {
		t.Errorf("unexpected body %v", body)
	}
	if ts, _ := body["timestamp"].(string); ts == "" {
		t.Error("timestamp missing")
	}
}

func TestReadyCheckFailsWhenRedisIsDown(t *testing.T) {
	srv := newTestServer(errors.New("connection refused"))

	w := get(srv, "/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestValidate(t *testing.T) {
	if _, err := New(&mockLogger{}, Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected an error without mongo")
	}
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 8080, LangFlow: langflow.New(langflow.Config{})}); err == nil {
		t.Error("expected an error without logger")
	}
}
