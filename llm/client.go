package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Responder answers a free-text question via an external model.
// Implementations perform no retries; callers bound latency with a
// context deadline.
type Responder interface {
	Ask(ctx context.Context, question string) (string, error)
}

// NewResponderFromEnv builds a Responder from LLM_PROVIDER.
// An empty provider disables the fallback entirely and returns nil.
func NewResponderFromEnv(ctx context.Context) (Responder, error) {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))

	switch provider {
	case "":
		return nil, nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return NewOpenAIResponder(apiKey, os.Getenv("OPENAI_MODEL")), nil

	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		return NewGeminiResponder(ctx, apiKey, os.Getenv("GEMINI_MODEL"))

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
