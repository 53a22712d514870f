package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmint/config"
)

func TestInitializeProviders_SortsAndSkips(t *testing.T) {
	logger := &mockLogger{}
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "ds-key"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "oa-key", Model: "gpt-4o-mini", Timeout: "10s"},
			{Name: "openai", Enabled: false, Priority: 3, APIKey: "disabled"},
			{Name: "mystery", Enabled: true, Priority: 4, APIKey: "x"},
		},
	}

	providers, err := InitializeProviders(context.Background(), logger, cfg)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "openai" || providers[0].Model() != "gpt-4o-mini" {
		t.Errorf("unexpected first provider %s/%s", providers[0].Name(), providers[0].Model())
	}
	if providers[1].Name() != "deepseek" || providers[1].Model() != "deepseek-chat" {
		t.Errorf("unexpected second provider %s/%s", providers[1].Name(), providers[1].Model())
	}
	if len(logger.warnMessages) == 0 {
		t.Error("expected a warning for the unknown provider")
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := InitializeProviders(context.Background(), &mockLogger{}, &config.LLMConfig{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = InitializeProviders(context.Background(), &mockLogger{}, &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "openai", Enabled: true, Priority: 1}},
	})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured when every provider lacks a key, got %v", err)
	}
}

func TestOpenAIAdapter_RoundTrip(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}],"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`))
	}))
	defer srv.Close()

	provider, err := createProvider(config.ProviderConfig{Name: "openai", APIKey: "k", BaseURL: srv.URL, Model: "m"})
	if err != nil {
		t.Fatalf("createProvider: %v", err)
	}

	req := UserText("split this", 0.3, 300)
	req.SystemInstruction = &Message{Parts: []Part{{Text: "be terse"}}}
	resp, err := provider.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Content.Text() != "[]" || resp.ProviderName != "openai" || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected response %+v", resp)
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %v", body["messages"])
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("expected system message first, got %v", first)
	}
}

func TestGeminiAdapter_RoundTrip(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[]"}]}}],"usageMetadata":{"promptTokenCount":1,"candidatesTokenCount":2,"totalTokenCount":3}}`))
	}))
	defer srv.Close()

	provider, err := createProvider(config.ProviderConfig{Name: "gemini", APIKey: "k", BaseURL: srv.URL, Model: "g"})
	if err != nil {
		t.Fatalf("createProvider: %v", err)
	}

	req := UserText("split this", 0.3, 300)
	req.SystemInstruction = &Message{Parts: []Part{{Text: "be terse"}}}
	resp, err := provider.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Content.Text() != "[]" || resp.ProviderName != "gemini" || resp.ModelName != "g" || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected response %+v", resp)
	}
	if _, ok := body["system_instruction"]; !ok {
		t.Errorf("system instruction not sent: %v", body)
	}
	contents, _ := body["contents"].([]any)
	if len(contents) != 1 {
		t.Errorf("expected one content entry, got %v", body["contents"])
	}
}
