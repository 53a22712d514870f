package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg = Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.BaseURL != DefaultBaseURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	cfg = Config{APIKey: "k", BaseURL: DeepSeekBaseURL}
	_ = cfg.Validate()
	if cfg.Model != DeepSeekModel {
		t.Errorf("expected %s for DeepSeek base URL, got %s", DeepSeekModel, cfg.Model)
	}
}

func TestCreateChatCompletion(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"[{\"title\":\"a\"}]"}}],"usage":{"prompt_tokens":3,"completion_tokens":5,"total_tokens":8}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "secret", BaseURL: srv.URL + "/", Model: "m1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.CreateChatCompletion(context.Background(), &ChatRequest{
		Messages:    []Message{{Role: "user", Content: "hi"}},
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}

	if got.Model != "m1" || got.MaxTokens != 100 || len(got.Messages) != 1 {
		t.Errorf("unexpected request body: %+v", got)
	}
	if resp.Content() != `[{"title":"a"}]` {
		t.Errorf("unexpected content %q", resp.Content())
	}
	if resp.Usage.TotalTokens != 8 {
		t.Errorf("expected 8 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if client.Model() != "m1" {
		t.Errorf("Model() = %s", client.Model())
	}
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "secret", BaseURL: srv.URL})
	_, err := client.CreateChatCompletion(context.Background(), &ChatRequest{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HTTPStatus() != http.StatusTooManyRequests || apiErr.Message != "rate limited" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestChatResponseContentEmpty(t *testing.T) {
	var r *ChatResponse
	if r.Content() != "" {
		t.Error("nil response should have empty content")
	}
	if (&ChatResponse{}).Content() != "" {
		t.Error("response without choices should have empty content")
	}
}
