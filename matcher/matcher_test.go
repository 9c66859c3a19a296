package matcher

import (
	"testing"

	"chatbot-backend/models"

	"github.com/stretchr/testify/assert"
)

func corpus(questions ...string) []models.Question {
	records := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		records = append(records, models.Question{Question: q, Answer: "answer"})
	}
	return records
}

func TestRankEmptyCorpus(t *testing.T) {
	result := Rank("anything", nil)
	assert.Empty(t, result)
}

func TestRankExactMatchScoresOne(t *testing.T) {
	result := Rank("What time does the gate open?", corpus("What time does the gate open?"))

	assert.Len(t, result, 1)
	assert.Equal(t, 1.0, result[0].Score)
}

func TestRankIgnoresCaseAndPunctuation(t *testing.T) {
	result := Rank("what time does the gate open", corpus("What time does the gate open?"))

	assert.Equal(t, 1.0, result[0].Score)
}

func TestRankParaphraseScoresAboveThreshold(t *testing.T) {
	result := Rank("when does the gate open", corpus(
		"Where can I park my car?",
		"What time does the gate open?",
	))

	assert.Equal(t, "What time does the gate open?", result[0].Question.Question)
	assert.GreaterOrEqual(t, result[0].Score, 0.6)
	assert.Less(t, result[1].Score, 0.6)
}

func TestRankToleratesTypos(t *testing.T) {
	result := Rank("what time does the gaet open", corpus("What time does the gate open?"))

	assert.GreaterOrEqual(t, result[0].Score, 0.6)
}

func TestRankToleratesWordReordering(t *testing.T) {
	result := Rank("the gate opens what time", corpus("What time does the gate open?"))

	assert.GreaterOrEqual(t, result[0].Score, 0.6)
}

func TestRankSortsDescending(t *testing.T) {
	result := Rank("where is the food court", corpus(
		"What time does the gate open?",
		"Where is the food court located?",
		"Can I bring a bag into the stadium?",
	))

	assert.Len(t, result, 3)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Score, result[i].Score)
	}
	assert.Equal(t, "Where is the food court located?", result[0].Question.Question)
}

func TestRankStableOnTies(t *testing.T) {
	// Two records with no lexical overlap with the query score identically,
	// so they must keep corpus order.
	result := Rank("zzz", corpus("first stored question", "second stored question"))

	assert.Len(t, result, 2)
	assert.Equal(t, result[0].Score, result[1].Score)
	assert.Equal(t, "first stored question", result[0].Question.Question)
	assert.Equal(t, "second stored question", result[1].Question.Question)
}

func TestRankIdempotent(t *testing.T) {
	records := corpus(
		"What time does the gate open?",
		"Where is the food court located?",
		"Can I bring a bag into the stadium?",
	)

	first := Rank("when does the gate open", records)
	second := Rank("when does the gate open", records)

	assert.Equal(t, first, second)
}

func TestRankMatchesQuestionFieldOnly(t *testing.T) {
	records := []models.Question{
		{Question: "Where is the lost and found?", Answer: "when does the gate open"},
	}

	result := Rank("when does the gate open", records)

	// The answer text matches the query exactly but must not influence the score.
	assert.Less(t, result[0].Score, 0.6)
}
