// Package llm holds the text-generation providers behind reminder.Provider.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodconnect/internal/reminder"
	"bloodconnect/pkg/types"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// ErrProviderNotConfigured is returned by Disabled for every call.
var ErrProviderNotConfigured = errors.New("text generation provider not configured")

const systemPrompt = "You write warm, concise blood donation reminders. Always answer with the requested JSON object only."

// New returns the provider selected by config.LLMProvider.
func New(ctx context.Context, config *types.Config) (reminder.Provider, error) {
	switch strings.ToLower(strings.TrimSpace(config.LLMProvider)) {
	case ProviderOpenAI:
		return NewOpenAI(config.OpenAIAPIKey, config.OpenAIModel)
	case ProviderGemini:
		return NewGemini(ctx, config.GeminiAPIKey, config.GeminiModel)
	case "", ProviderNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", config.LLMProvider)
	}
}

// Disabled is used when no provider is configured so the rest of the
// application keeps working.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", ErrProviderNotConfigured
}
