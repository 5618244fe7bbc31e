// Package mock is the terminal strategy of the fallback chain: a deterministic,
// network-free generator that never fails.
package mock

import (
	"context"
	"fmt"

	"github.com/textcraft-ai/textcraft-api/internal/provider"
)

const (
	mockPromptTokens     = 20
	mockCompletionTokens = 150
	mockTotalTokens      = 170
	mockModel            = "gpt-3.5-turbo"
)

type MockProvider struct{}

func New() provider.Provider {
	return &MockProvider{}
}

func (p *MockProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Result, error) {
	model := req.Model
	if model == "" {
		model = mockModel
	}

	text := fmt.Sprintf(`This is a sample generated text based on your prompt: %q.
The %q model was requested with system instructions: %q.

Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam euismod,
nisl eget aliquam ultricies, nunc nisl aliquet nunc, vitae aliquam nisl
nunc vitae nisl. Nullam euismod, nisl eget aliquam ultricies, nunc nisl
aliquet nunc, vitae aliquam nisl nunc vitae nisl.`,
		req.Prompt, model, req.SystemPrompt)

	return &provider.Result{
		GeneratedText: text,
		Metadata: provider.Metadata{
			PromptTokens:     mockPromptTokens,
			CompletionTokens: mockCompletionTokens,
			TotalTokens:      mockTotalTokens,
			Model:            mockModel,
		},
	}, nil
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) DefaultModel() string {
	return mockModel
}

func (p *MockProvider) DefaultTemperature() float64 {
	return 0.7
}
