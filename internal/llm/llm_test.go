package llm

import (
	"context"
	"testing"

	"bloodconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	for _, name := range []string{"", "none", " NONE "} {
		p, err := New(context.Background(), &types.Config{LLMProvider: name})
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(context.Background(), &types.Config{LLMProvider: "genkit"})
	assert.Error(t, err)
}

func TestNew_RequiresKeys(t *testing.T) {
	_, err := New(context.Background(), &types.Config{LLMProvider: ProviderOpenAI})
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	_, err = New(context.Background(), &types.Config{LLMProvider: ProviderGemini})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestNewOpenAI_DefaultModel(t *testing.T) {
	p, err := NewOpenAI("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.model)

	params := p.params("hello")
	assert.Len(t, params.Messages, 2)
	require.NotNil(t, params.ResponseFormat.OfJSONSchema)
	assert.Equal(t, "donation_reminder", params.ResponseFormat.OfJSONSchema.JSONSchema.Name)
}

func TestGeminiConfigRequiresBothFields(t *testing.T) {
	cfg := generateConfig()
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.ElementsMatch(t, []string{"emailContent", "smsContent"}, cfg.ResponseSchema.Required)
}
