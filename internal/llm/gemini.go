package llm

import (
	"context"
	"fmt"
	"strings"

	"bloodconnect/internal/reminder"

	"google.golang.org/genai"
)

// Gemini generates the reminder JSON with Google's Gemini API and a
// response schema.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
	}

	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig())
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("GenAI: no content returned")
	}

	return text, nil
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				reminder.FieldEmailContent: {
					Type:        genai.TypeString,
					Description: "The content of the personalized email reminder.",
				},
				reminder.FieldSMSContent: {
					Type:        genai.TypeString,
					Description: "The content of the personalized SMS reminder.",
				},
			},
			Required:         []string{reminder.FieldEmailContent, reminder.FieldSMSContent},
			PropertyOrdering: []string{reminder.FieldEmailContent, reminder.FieldSMSContent},
		},
	}
}
