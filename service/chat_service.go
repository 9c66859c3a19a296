package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"chatbot-backend/llm"
	"chatbot-backend/matcher"
	"chatbot-backend/models"
)

const (
	// DefaultAcceptThreshold is the similarity a top candidate must reach
	// before its stored answer is returned as authoritative. The system
	// historically ran at 0.4 and 0.6 depending on matching mode; 0.6 is
	// the single documented operating point here.
	DefaultAcceptThreshold = 0.6

	// NotFoundMessage is returned when no stored answer applies and no
	// fallback is available.
	NotFoundMessage = "Sorry, I don't have an answer for that yet. Maybe one of these questions helps?"

	suggestionLimit = 3

	defaultFallbackTimeout = 30 * time.Second
)

// QuestionStore is the corpus read capability the resolver consumes.
// It must reflect the latest committed state on every call.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]models.Question, error)
}

// ChatService resolves chat messages against the stored corpus.
// Each request is handled statelessly from a fresh corpus snapshot.
type ChatService struct {
	questions       QuestionStore
	fallback        llm.Responder
	acceptThreshold float64
	fallbackTimeout time.Duration
	greetingTrigger string
	greetingReply   string
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithQuestionStore sets the corpus read capability
func ChatWithQuestionStore(store QuestionStore) ChatServiceOption {
	return func(s *ChatService) {
		s.questions = store
	}
}

// ChatWithFallback sets the external responder consulted on no-match.
// A nil responder disables the fallback tier.
func ChatWithFallback(responder llm.Responder) ChatServiceOption {
	return func(s *ChatService) {
		s.fallback = responder
	}
}

// ChatWithAcceptThreshold overrides the similarity cutoff
func ChatWithAcceptThreshold(threshold float64) ChatServiceOption {
	return func(s *ChatService) {
		s.acceptThreshold = threshold
	}
}

// ChatWithFallbackTimeout bounds the external responder call
func ChatWithFallbackTimeout(timeout time.Duration) ChatServiceOption {
	return func(s *ChatService) {
		s.fallbackTimeout = timeout
	}
}

// ChatWithGreeting configures the exact-match greeting short-circuit
// used by the chat UI's welcome probe. Unset means every message goes
// through normal matching.
func ChatWithGreeting(trigger, reply string) ChatServiceOption {
	return func(s *ChatService) {
		s.greetingTrigger = trigger
		s.greetingReply = reply
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{
		acceptThreshold: DefaultAcceptThreshold,
		fallbackTimeout: defaultFallbackTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatRequest represents a request to resolve a chat message
type ChatRequest struct {
	Message string
}

// ChatResult represents the resolved response. Suggestions is nil unless
// no confident match was found and weak candidates exist.
type ChatResult struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Resolve turns a chat message into a response. The decision order is:
// greeting short-circuit, confident stored answer, external fallback,
// not-found with suggestions. A failing fallback degrades to the
// not-found tier instead of erroring the request.
func (s *ChatService) Resolve(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if s.questions == nil {
		return nil, errors.New("question store not set")
	}

	message := strings.TrimSpace(req.Message)

	if s.greetingTrigger != "" && message == s.greetingTrigger {
		return &ChatResult{Response: s.greetingReply}, nil
	}

	corpus, err := s.questions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := matcher.Rank(message, corpus)

	if len(candidates) > 0 && candidates[0].Score >= s.acceptThreshold {
		return &ChatResult{Response: candidates[0].Question.Answer}, nil
	}

	if s.fallback != nil {
		answer, err := s.askFallback(ctx, message)
		if err == nil {
			return &ChatResult{Response: answer}, nil
		}
		log.Printf("Fallback responder failed, degrading to not-found: %v", err)
	}

	return &ChatResult{
		Response:    NotFoundMessage,
		Suggestions: topSuggestions(candidates),
	}, nil
}

func (s *ChatService) askFallback(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fallbackTimeout)
	defer cancel()
	return s.fallback.Ask(ctx, message)
}

func topSuggestions(candidates []matcher.Candidate) []string {
	if len(candidates) == 0 {
		return nil
	}

	limit := suggestionLimit
	if len(candidates) < limit {
		limit = len(candidates)
	}

	suggestions := make([]string, 0, limit)
	for _, candidate := range candidates[:limit] {
		suggestions = append(suggestions, candidate.Question.Question)
	}
	return suggestions
}
