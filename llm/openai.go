package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT3Dot5Turbo

// OpenAIResponder answers questions via the OpenAI chat completions API
type OpenAIResponder struct {
	client *openai.Client
	model  string
}

// NewOpenAIResponder creates a new OpenAI responder
func NewOpenAIResponder(apiKey, model string) *OpenAIResponder {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIResponder{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Ask sends the question and returns the model's answer as plain text
func (r *OpenAIResponder) Ask(ctx context.Context, question string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful assistant.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			},
		},
		MaxTokens:   100,
		Temperature: 0.7,
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}
