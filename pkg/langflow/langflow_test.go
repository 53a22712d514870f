package langflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRun = `{
  "session_id": "s1",
  "outputs": [
    {
      "inputs": {"input_value": "meeting notes"},
      "outputs": [
        {"outputs": {"message": {"message": "` + "```json\\n[{\\\"title\\\":\\\"Send report\\\"}]\\n```" + `", "sender": "Machine"}}}
      ]
    }
  ]
}`

func TestRun(t *testing.T) {
	var got runRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer lf-key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(sampleRun))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "lf-key", URL: srv.URL + "/api/v1/run/flow"})
	res, err := client.Run(context.Background(), "meeting notes")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.InputValue != "meeting notes" || got.InputType != "chat" || got.OutputType != "chat" {
		t.Errorf("unexpected request payload %+v", got)
	}
	want := "```json\n[{\"title\":\"Send report\"}]\n```"
	if res.Response.Message() != want {
		t.Errorf("Message() = %q, want %q", res.Response.Message(), want)
	}
	if len(res.Raw) == 0 {
		t.Error("expected raw payload to be kept")
	}
}

func TestRunNotConfigured(t *testing.T) {
	client := New(Config{URL: "http://example.invalid"})
	if client.Configured() {
		t.Fatal("client without API key must not be configured")
	}
	if _, err := client.Run(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestRunUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", URL: srv.URL})
	_, err := client.Run(context.Background(), "x")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HTTPStatus() != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", apiErr.HTTPStatus())
	}
}

func TestMessageMissingPath(t *testing.T) {
	cases := map[string]string{
		"no outputs":       `{}`,
		"empty inner":      `{"outputs":[{"outputs":[]}]}`,
		"no message field": `{"outputs":[{"outputs":[{"outputs":{}}]}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var r RunResponse
			if err := json.Unmarshal([]byte(raw), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if r.Message() != "" {
				t.Errorf("expected empty message, got %q", r.Message())
			}
		})
	}
}

func TestRunUnexpectedShape(t *testing.T) {
	cases := map[string]string{
		"message is a string":       `{"outputs":[{"outputs":[{"outputs":{"message":"[]"}}]}]}`,
		"message text is an object": `{"outputs":[{"outputs":[{"outputs":{"message":{"message":{"text":"[]"}}}}]}]}`,
		"outputs is an object":      `{"outputs":{"message":"[]"}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			client := New(Config{APIKey: "k", URL: srv.URL})
			res, err := client.Run(context.Background(), "x")
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Response.Message() != "" {
				t.Errorf("expected empty message, got %q", res.Response.Message())
			}
			if string(res.Raw) != payload {
				t.Errorf("raw payload = %s, want %s", res.Raw, payload)
			}
		})
	}
}

func TestRunInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", URL: srv.URL})
	if _, err := client.Run(context.Background(), "x"); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}
