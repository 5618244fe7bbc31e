package deepseek

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

type DeepSeekProvider struct {
	cfg        config.ProviderConfig
	httpClient *http.Client
}

type deepSeekRequest struct {
	Model            string            `json:"model"`
	Messages         []deepSeekMessage `json:"messages"`
	Temperature      float64           `json:"temperature"`
	MaxTokens        int               `json:"max_tokens"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
}

type deepSeekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepSeekResponse struct {
	ID      string           `json:"id"`
	Choices []deepSeekChoice `json:"choices"`
	Usage   deepSeekUsage    `json:"usage"`
	Model   string           `json:"model"`
}

type deepSeekChoice struct {
	Message deepSeekMessage `json:"message"`
}

type deepSeekUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type deepSeekErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(cfg config.ProviderConfig) provider.Provider {
	return &DeepSeekProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *DeepSeekProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Result, error) {
	if p.cfg.APIKey == "" {
		return nil, &provider.ConfigError{Provider: "DeepSeek"}
	}
	apiKey := strings.TrimSpace(p.cfg.APIKey)

	dsReq := p.mapRequest(req)
	body, err := json.Marshal(dsReq)
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

	// Read the raw body before assuming it parses as JSON; provider error
	// pages are not always JSON.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody deepSeekErrorBody
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error.Message != "" {
			return nil, &provider.RequestError{Provider: "DeepSeek", StatusCode: resp.StatusCode, Message: errBody.Error.Message}
		}
		return nil, &provider.RequestError{Provider: "DeepSeek", StatusCode: resp.StatusCode, Message: truncate(string(raw), 100)}
	}

	var dsResp deepSeekResponse
	if err := json.Unmarshal(raw, &dsResp); err != nil {
		return nil, &provider.ResponseError{Provider: "DeepSeek", Message: "failed to parse response"}
	}

	if len(dsResp.Choices) == 0 || dsResp.Choices[0].Message.Content == "" {
		return nil, &provider.ResponseError{Provider: "DeepSeek", Message: "unexpected response structure"}
	}

	model := dsResp.Model
	if model == "" {
		model = dsReq.Model
	}

	return &provider.Result{
		GeneratedText: dsResp.Choices[0].Message.Content,
		Metadata: provider.Metadata{
			PromptTokens:     dsResp.Usage.PromptTokens,
			CompletionTokens: dsResp.Usage.CompletionTokens,
			TotalTokens:      dsResp.Usage.TotalTokens,
			Model:            model,
		},
	}, nil
}

func (p *DeepSeekProvider) mapRequest(req *provider.Request) deepSeekRequest {
	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = "You are a helpful assistant."
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	return deepSeekRequest{
		Model: model,
		Messages: []deepSeekMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: req.Prompt},
		},
		Temperature:      floatOr(req.Temperature, p.cfg.Temperature),
		MaxTokens:        intOr(req.MaxTokens, p.cfg.MaxTokens),
		TopP:             floatOr(req.TopP, p.cfg.TopP),
		FrequencyPenalty: floatOr(req.FrequencyPenalty, p.cfg.FrequencyPenalty),
		PresencePenalty:  floatOr(req.PresencePenalty, p.cfg.PresencePenalty),
	}
}

func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

func (p *DeepSeekProvider) DefaultModel() string {
	return p.cfg.Model
}

func (p *DeepSeekProvider) DefaultTemperature() float64 {
	return p.cfg.Temperature
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
