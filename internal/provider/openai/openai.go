package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/textcraft-ai/textcraft-api/config"
	"github.com/textcraft-ai/textcraft-api/internal/provider"
)

type OpenAIProvider struct {
	cfg        config.ProviderConfig
	httpClient *http.Client
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	ID      string         `json:"id"`
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
	Model   string         `json:"model"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(cfg config.ProviderConfig) provider.Provider {
	return &OpenAIProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Result, error) {
	if p.cfg.APIKey == "" {
		return nil, &provider.ConfigError{Provider: "OpenAI"}
	}
	apiKey := strings.TrimSpace(p.cfg.APIKey)

	oaReq := p.mapRequest(req)
	body, err := json.Marshal(oaReq)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/chat/completions", p.cfg.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody openAIErrorBody
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error.Message != "" {
			return nil, &provider.RequestError{Provider: "OpenAI", StatusCode: resp.StatusCode, Message: errBody.Error.Message}
		}
		return nil, &provider.RequestError{Provider: "OpenAI", StatusCode: resp.StatusCode, Message: truncate(string(raw), 100)}
	}

	var oaResp openAIResponse
	if err := json.Unmarshal(raw, &oaResp); err != nil {
		return nil, &provider.ResponseError{Provider: "OpenAI", Message: "failed to parse response"}
	}

	if len(oaResp.Choices) == 0 || oaResp.Choices[0].Message.Content == "" {
		return nil, &provider.ResponseError{Provider: "OpenAI", Message: "unexpected response structure"}
	}

	model := oaResp.Model
	if model == "" {
		model = oaReq.Model
	}

	return &provider.Result{
		GeneratedText: oaResp.Choices[0].Message.Content,
		Metadata: provider.Metadata{
			PromptTokens:     oaResp.Usage.PromptTokens,
			CompletionTokens: oaResp.Usage.CompletionTokens,
			TotalTokens:      oaResp.Usage.TotalTokens,
			Model:            model,
		},
	}, nil
}

func (p *OpenAIProvider) mapRequest(req *provider.Request) openAIRequest {
	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = "You are a helpful assistant."
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	temperature := p.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	maxTokens := p.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	return openAIRequest{
		Model: model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) DefaultModel() string {
	return p.cfg.Model
}

func (p *OpenAIProvider) DefaultTemperature() float64 {
	return p.cfg.Temperature
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
