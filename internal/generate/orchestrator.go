// Package generate runs the provider fallback chain for one content request:
// primary provider, then the alternate, then a deterministic mock. The chain is
// sequential; each decision depends on the previous attempt's outcome.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/textcraft-ai/textcraft-api/internal/prompt"
	"github.com/textcraft-ai/textcraft-api/internal/provider"
	"github.com/textcraft-ai/textcraft-api/internal/store"
)

// Request is one content-generation request as accepted from the API layer.
// Enum-ish fields (ContentType, Tone, Length, Provider) fall back to defaults
// when empty or unrecognized.
type Request struct {
	Prompt      string
	Template    string
	ContentType string
	Tone        string
	Length      string

	Provider         string
	Model            string
	SystemPrompt     string
	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
	Title            string
}

// Outcome reports the result together with the provider that actually served
// it, which after a fallback differs from the requested one.
type Outcome struct {
	Result      *provider.Result
	Provider    string
	SavedTextID string
}

// ConfigurationError short-circuits the fallback chain: a misconfigured
// deployment must be visible, not silently masked by mock output.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("API configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type Orchestrator struct {
	providers map[string]provider.Provider
	mock      provider.Provider
	texts     store.GeneratedTextStore
	tracer    trace.Tracer
	logger    *slog.Logger
}

func NewOrchestrator(deepseek, openai, mock provider.Provider, texts store.GeneratedTextStore, tracer trace.Tracer, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		providers: map[string]provider.Provider{
			deepseek.Name(): deepseek,
			openai.Name():   openai,
		},
		mock:   mock,
		texts:  texts,
		tracer: tracer,
		logger: logger,
	}
}

// Generate runs the fallback chain and persists the result best-effort. The
// only error it returns is a ConfigurationError; every other failure mode
// terminates in a successful (possibly mock) result.
func (o *Orchestrator) Generate(ctx context.Context, userID string, req *Request) (*Outcome, error) {
	ctx, span := o.tracer.Start(ctx, "generate.chain")
	defer span.End()

	contentType := req.ContentType
	if contentType == "" {
		contentType = prompt.DefaultContentType
	}
	tone := req.Tone
	if tone == "" {
		tone = prompt.DefaultTone
	}
	length := req.Length
	if length == "" {
		length = prompt.DefaultLength
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = prompt.SystemPrompt(contentType, tone, length)
	}

	primary := o.providers["deepseek"]
	if p, ok := o.providers[req.Provider]; ok {
		primary = p
	}
	secondary := o.providers["openai"]
	if primary.Name() == "openai" {
		secondary = o.providers["deepseek"]
	}
	span.SetAttributes(attribute.String("generate.primary", primary.Name()))

	result, err := o.attempt(ctx, primary, req, contentType, systemPrompt, false)
	servedBy := primary.Name()

	if err != nil {
		o.logger.Warn("generation attempt failed",
			"provider", primary.Name(), "error", err)

		// Cross-provider model names are not interchangeable: when falling
		// back to openai, use its known-good default model.
		forceModel := secondary.Name() == "openai"
		result, err = o.attempt(ctx, secondary, req, contentType, systemPrompt, forceModel)
		servedBy = secondary.Name()

		if err != nil {
			if provider.IsConfig(err) {
				o.logger.Error("generation aborted on configuration error",
					"provider", secondary.Name(), "error", err)
				span.SetAttributes(attribute.String("generate.outcome", "configuration_error"))
				return nil, &ConfigurationError{Err: err}
			}

			o.logger.Warn("fallback attempt failed, using mock generation",
				"provider", secondary.Name(), "error", err)
			result, _ = o.mock.Generate(ctx, &provider.Request{
				Prompt:       req.Prompt,
				SystemPrompt: systemPrompt,
				Model:        req.Model,
			})
			servedBy = o.mock.Name()
		}
	}

	span.SetAttributes(
		attribute.String("generate.served_by", servedBy),
		attribute.String("generate.model", result.Metadata.Model),
	)

	outcome := &Outcome{Result: result, Provider: servedBy}
	outcome.SavedTextID = o.persist(ctx, userID, req, result, servedBy)
	return outcome, nil
}

func (o *Orchestrator) attempt(ctx context.Context, p provider.Provider, req *Request, contentType, systemPrompt string, forceDefaultModel bool) (*provider.Result, error) {
	temperature := p.DefaultTemperature()
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	temperature = prompt.ClampTemperature(contentType, temperature)

	model := req.Model
	if forceDefaultModel {
		model = p.DefaultModel()
	}

	return p.Generate(ctx, &provider.Request{
		Prompt:           req.Prompt,
		SystemPrompt:     systemPrompt,
		Model:            model,
		Temperature:      &temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
	})
}

// persist saves the generated text best-effort: a storage failure is logged
// and the generation result is still returned to the caller.
func (o *Orchestrator) persist(ctx context.Context, userID string, req *Request, result *provider.Result, servedBy string) string {
	title := req.Title
	if title == "" {
		title = "Generated Text"
	}

	var templateID *string
	if req.Template != "" {
		templateID = &req.Template
	}

	settings := map[string]any{
		"provider":    servedBy,
		"requested":   req.Provider,
		"model":       result.Metadata.Model,
		"contentType": req.ContentType,
		"tone":        req.Tone,
		"length":      req.Length,
		"metadata":    result.Metadata,
	}
	if req.Temperature != nil {
		settings["temperature"] = *req.Temperature
	}
	if req.MaxTokens != nil {
		settings["maxTokens"] = *req.MaxTokens
	}

	text := &store.GeneratedText{
		UserID:     userID,
		TemplateID: templateID,
		Title:      title,
		Content:    result.GeneratedText,
		Prompt:     req.Prompt,
		Settings:   settings,
	}

	if err := o.texts.Create(ctx, text); err != nil {
		o.logger.Error("failed to save generated text", "error", err)
		return ""
	}
	return text.ID
}
