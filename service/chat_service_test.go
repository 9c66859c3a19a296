package service

import (
	"context"
	"errors"
	"testing"

	"chatbot-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionStore struct {
	questions []models.Question
	err       error
	calls     int
}

func (f *fakeQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	f.calls++
	return f.questions, f.err
}

type fakeResponder struct {
	answer string
	err    error
	asked  []string
}

func (f *fakeResponder) Ask(ctx context.Context, question string) (string, error) {
	f.asked = append(f.asked, question)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestResolveConfidentMatchReturnsStoredAnswer(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "What time does the gate open?", Answer: "8 AM"},
	}}
	svc := NewChatService(ChatWithQuestionStore(store))

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "when does the gate open"})

	require.NoError(t, err)
	assert.Equal(t, "8 AM", result.Response)
	assert.Nil(t, result.Suggestions)
}

func TestResolveEmptyCorpusWithoutFallback(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewChatService(ChatWithQuestionStore(store))

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "anything"})

	require.NoError(t, err)
	assert.Equal(t, NotFoundMessage, result.Response)
	assert.Nil(t, result.Suggestions)
}

func TestResolveUnmatchedQueryUsesFallback(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "What time does the gate open?", Answer: "8 AM"},
		{Question: "Where is the food court located?", Answer: "North concourse"},
		{Question: "Can I bring a bag into the stadium?", Answer: "Small bags only"},
		{Question: "Is there wheelchair access?", Answer: "Yes, all entrances"},
		{Question: "Where can I buy tickets?", Answer: "At the box office"},
	}}
	responder := &fakeResponder{answer: "42"}
	svc := NewChatService(
		ChatWithQuestionStore(store),
		ChatWithFallback(responder),
	)

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "what is the meaning of life"})

	require.NoError(t, err)
	assert.Equal(t, "42", result.Response)
	assert.Nil(t, result.Suggestions)
	assert.Equal(t, []string{"what is the meaning of life"}, responder.asked)
}

func TestResolveGreetingSkipsMatching(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "Hello there", Answer: "should never be returned"},
	}}
	svc := NewChatService(
		ChatWithQuestionStore(store),
		ChatWithGreeting("Hello", "Hi! Ask me anything about the stadium."),
	)

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, "Hi! Ask me anything about the stadium.", result.Response)
	assert.Zero(t, store.calls, "matching must be skipped entirely")
}

func TestResolveNearMissReturnsSuggestion(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "Where can I park my car near the stadium?", Answer: "Lot B"},
	}}
	svc := NewChatService(ChatWithQuestionStore(store))

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "parking near the arena"})

	require.NoError(t, err)
	assert.Equal(t, NotFoundMessage, result.Response)
	assert.Equal(t, []string{"Where can I park my car near the stadium?"}, result.Suggestions)
}

func TestResolveCapsSuggestionsAtThree(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "Question one", Answer: "a"},
		{Question: "Question two", Answer: "b"},
		{Question: "Question three", Answer: "c"},
		{Question: "Question four", Answer: "d"},
		{Question: "Question five", Answer: "e"},
	}}
	svc := NewChatService(ChatWithQuestionStore(store))

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "zzz"})

	require.NoError(t, err)
	assert.Equal(t, NotFoundMessage, result.Response)
	assert.Len(t, result.Suggestions, 3)
	for _, suggestion := range result.Suggestions {
		assert.Contains(t, []string{
			"Question one", "Question two", "Question three",
			"Question four", "Question five",
		}, suggestion)
	}
}

func TestResolveFallbackFailureDegradesToNotFound(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "Where is the food court located?", Answer: "North concourse"},
	}}
	responder := &fakeResponder{err: errors.New("upstream timeout")}
	svc := NewChatService(
		ChatWithQuestionStore(store),
		ChatWithFallback(responder),
	)

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "zzz"})

	require.NoError(t, err)
	assert.Equal(t, NotFoundMessage, result.Response)
	assert.Equal(t, []string{"Where is the food court located?"}, result.Suggestions)
}

func TestResolveCorpusErrorPropagates(t *testing.T) {
	store := &fakeQuestionStore{err: errors.New("connection refused")}
	svc := NewChatService(
		ChatWithQuestionStore(store),
		ChatWithFallback(&fakeResponder{answer: "fabricated"}),
	)

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "anything"})

	assert.Error(t, err)
	assert.Nil(t, result, "a corpus failure must never yield a fabricated answer")
}

func TestResolveThresholdIsConfigurable(t *testing.T) {
	store := &fakeQuestionStore{questions: []models.Question{
		{Question: "Where can I park?", Answer: "Lot B"},
	}}
	// Threshold 0 accepts any best candidate.
	svc := NewChatService(
		ChatWithQuestionStore(store),
		ChatWithAcceptThreshold(0),
	)

	result, err := svc.Resolve(context.Background(), ChatRequest{Message: "completely unrelated"})

	require.NoError(t, err)
	assert.Equal(t, "Lot B", result.Response)
}

func TestResolveMissingStoreErrors(t *testing.T) {
	svc := NewChatService()

	_, err := svc.Resolve(context.Background(), ChatRequest{Message: "anything"})

	assert.Error(t, err)
}
