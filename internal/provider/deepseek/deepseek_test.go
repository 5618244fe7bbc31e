package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/textcraft-ai/textcraft-api/config"
	"github.com/textcraft-ai/textcraft-api/internal/provider"
)

func testConfig(baseURL string) config.ProviderConfig {
	return config.ProviderConfig{
		APIKey:           "test-key",
		BaseURL:          baseURL,
		Model:            "deepseek-chat",
		Temperature:      0.0,
		MaxTokens:        4096,
		TopP:             0.8,
		FrequencyPenalty: 0.2,
		PresencePenalty:  0.1,
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotBody deepSeekRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header: %s", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		resp := deepSeekResponse{
			ID: "test-id",
			Choices: []deepSeekChoice{
				{Message: deepSeekMessage{Role: "assistant", Content: "Hello from DeepSeek!"}},
			},
			Usage: deepSeekUsage{PromptTokens: 12, CompletionTokens: 34, TotalTokens: 46},
			Model: "deepseek-chat",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	resp, err := p.Generate(context.Background(), &provider.Request{
		Prompt:       "write a post",
		SystemPrompt: "You are a writer.",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.GeneratedText != "Hello from DeepSeek!" {
		t.Errorf("unexpected text: %s", resp.GeneratedText)
	}
	if resp.Metadata.PromptTokens != 12 || resp.Metadata.CompletionTokens != 34 || resp.Metadata.TotalTokens != 46 {
		t.Errorf("unexpected usage: %+v", resp.Metadata)
	}
	if resp.Metadata.Model != "deepseek-chat" {
		t.Errorf("unexpected model: %s", resp.Metadata.Model)
	}

	// DeepSeek requests carry the full sampling parameter set.
	if gotBody.TopP != 0.8 || gotBody.FrequencyPenalty != 0.2 || gotBody.PresencePenalty != 0.1 {
		t.Errorf("expected config defaults in request body, got %+v", gotBody)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotBody.Messages)
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.APIKey = ""
	p := New(cfg)

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	if !provider.IsConfig(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	var ce *provider.ConfigError
	if !errors.As(err, &ce) || ce.Provider != "DeepSeek" {
		t.Errorf("expected DeepSeek config error, got %v", err)
	}
}

func TestGenerate_ProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API key provided"}}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	var reqErr *provider.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", reqErr.StatusCode)
	}
	if reqErr.Message != "Invalid API key provided" {
		t.Errorf("expected provider error message, got %q", reqErr.Message)
	}
}

func TestGenerate_NonJSONErrorBodyTruncated(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write(long)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	var reqErr *provider.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if len(reqErr.Message) != 100 {
		t.Errorf("expected raw body truncated to 100 chars, got %d", len(reqErr.Message))
	}
}

func TestGenerate_MissingChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","choices":[],"model":"deepseek-chat"}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	var respErr *provider.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
}

func TestGenerate_ModelFallsBackToRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	resp, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi", Model: "deepseek-reasoner"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Metadata.Model != "deepseek-reasoner" {
		t.Errorf("expected requested model when response omits it, got %s", resp.Metadata.Model)
	}
}

func TestName(t *testing.T) {
	p := New(testConfig(""))
	if p.Name() != "deepseek" {
		t.Errorf("expected 'deepseek', got %s", p.Name())
	}
}
