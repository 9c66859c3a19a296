package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiResponder answers questions via the Gemini API
type GeminiResponder struct {
	client *genai.Client
	model  string
}

// NewGeminiResponder creates a new Gemini responder
func NewGeminiResponder(ctx context.Context, apiKey, model string) (*GeminiResponder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiResponder{
		client: client,
		model:  model,
	}, nil
}

// Ask sends the question and returns the model's answer as plain text
func (r *GeminiResponder) Ask(ctx context.Context, question string) (string, error) {
	model := r.client.GenerativeModel(r.model)
	resp, err := model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt), nil
			}
		}
	}

	return "", fmt.Errorf("no response candidates or content")
}
