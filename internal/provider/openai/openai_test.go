package openai

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
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   500,
	}
}

func TestGenerate_Success(t *testing.T) {
	var rawBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&rawBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		resp := openAIResponse{
			ID: "test-id",
			Choices: []openAIChoice{
				{Message: openAIMessage{Role: "assistant", Content: "Hello from OpenAI!"}},
			},
			Usage: openAIUsage{PromptTokens: 15, CompletionTokens: 25, TotalTokens: 40},
			Model: "gpt-3.5-turbo-0125",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	resp, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.GeneratedText != "Hello from OpenAI!" {
		t.Errorf("unexpected text: %s", resp.GeneratedText)
	}
	if resp.Metadata.Model != "gpt-3.5-turbo-0125" {
		t.Errorf("expected response model to win, got %s", resp.Metadata.Model)
	}
	if resp.Metadata.TotalTokens != 40 {
		t.Errorf("unexpected total tokens: %d", resp.Metadata.TotalTokens)
	}

	// Unlike DeepSeek, OpenAI requests carry no extra sampling knobs.
	for _, field := range []string{"top_p", "frequency_penalty", "presence_penalty"} {
		if _, ok := rawBody[field]; ok {
			t.Errorf("unexpected field %q in request body", field)
		}
	}
	if rawBody["model"] != "gpt-3.5-turbo" {
		t.Errorf("expected default model in request, got %v", rawBody["model"])
	}
	if rawBody["max_tokens"] != float64(500) {
		t.Errorf("expected default max_tokens 500, got %v", rawBody["max_tokens"])
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
	if !errors.As(err, &ce) || ce.Provider != "OpenAI" {
		t.Errorf("expected OpenAI config error, got %v", err)
	}
}

func TestGenerate_ProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	var reqErr *provider.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "Rate limit reached" {
		t.Errorf("expected provider error message, got %q", reqErr.Message)
	}
}

func TestGenerate_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""}}],"model":"gpt-3.5-turbo"}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	_, err := p.Generate(context.Background(), &provider.Request{Prompt: "hi"})
	var respErr *provider.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
}

func TestRequestOverrides(t *testing.T) {
	var rawBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&rawBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}],"model":"gpt-4o"}`))
	}))
	defer server.Close()

	p := New(testConfig(server.URL))

	temp := 0.2
	maxTokens := 1000
	_, err := p.Generate(context.Background(), &provider.Request{
		Prompt:      "hi",
		Model:       "gpt-4o",
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if rawBody["model"] != "gpt-4o" {
		t.Errorf("expected model override, got %v", rawBody["model"])
	}
	if rawBody["temperature"] != 0.2 {
		t.Errorf("expected temperature override, got %v", rawBody["temperature"])
	}
	if rawBody["max_tokens"] != float64(1000) {
		t.Errorf("expected max_tokens override, got %v", rawBody["max_tokens"])
	}
}

func TestName(t *testing.T) {
	p := New(testConfig(""))
	if p.Name() != "openai" {
		t.Errorf("expected 'openai', got %s", p.Name())
	}
}
