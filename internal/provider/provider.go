package provider

import (
	"context"
	"errors"
	"fmt"
)

// Request is a single text-generation attempt against one provider. Pointer
// fields distinguish "caller did not set this" from an explicit zero so each
// adapter can fall back to its own configured default.
type Request struct {
	Prompt           string
	SystemPrompt     string
	Model            string
	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
}

type Result struct {
	GeneratedText string   `json:"generatedText"`
	Metadata      Metadata `json:"metadata"`
}

// Metadata always reports the model that actually served the request, which may
// differ from the one the caller asked for after a fallback.
type Metadata struct {
	PromptTokens     int    `json:"promptTokens"`
	CompletionTokens int    `json:"completionTokens"`
	TotalTokens      int    `json:"totalTokens"`
	Model            string `json:"model"`
}

type Provider interface {
	Generate(ctx context.Context, req *Request) (*Result, error)
	Name() string
	DefaultModel() string
	DefaultTemperature() float64
}

// ConfigError means the provider cannot be called at all: its API key is
// missing. Detected before any network I/O.
type ConfigError struct {
	Provider string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key is not configured", e.Provider)
}

// RequestError is a non-2xx response from the provider's API.
type RequestError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// ResponseError is a 2xx response whose body is unparseable or missing the
// expected completion content.
type ResponseError struct {
	Provider string
	Message  string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// IsConfig reports whether err is a missing-credential condition, which the
// fallback chain must surface instead of masking with mock output.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
