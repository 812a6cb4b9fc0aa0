package llm

import (
	"context"
	"fmt"
	"strings"

	"bloodconnect/internal/reminder"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI asks a chat completion model for the reminder JSON using strict
// structured outputs.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string, opts ...option.RequestOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}

	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAI{
		client: &client,
		model:  model,
	}, nil
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.params(prompt))
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no completion received")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAI) params(prompt string) openai.ChatCompletionNewParams {
	schema := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "donation_reminder",
		Description: openai.String("Personalized email and SMS donation reminder"),
		Schema:      reminder.ResponseSchema(),
		Strict:      openai.Bool(true),
	}

	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schema},
		},
		Temperature: openai.Float(0.7),
	}
}
