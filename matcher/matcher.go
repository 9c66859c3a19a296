package matcher

import (
	"sort"
	"strings"
	"unicode"

	"chatbot-backend/models"

	"github.com/agnivade/levenshtein"
)

// Candidate pairs a stored question with its similarity to a query.
// Score is normalized to [0,1]; higher means more similar.
type Candidate struct {
	Question models.Question
	Score    float64
}

// Rank scores every record in the corpus against the query and returns
// the full list ordered best match first. Ties keep the original corpus
// order. Threshold decisions belong to the caller, not here.
func Rank(query string, corpus []models.Question) []Candidate {
	if len(corpus) == 0 {
		return nil
	}

	queryNorm := normalize(query)
	queryTokens := strings.Fields(queryNorm)

	candidates := make([]Candidate, 0, len(corpus))
	for _, q := range corpus {
		candidates = append(candidates, Candidate{
			Question: q,
			Score:    similarity(queryNorm, queryTokens, q.Question),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// similarity blends three lexical signals and keeps the strongest:
// character-level edit distance (catches typos), edit distance over
// sorted tokens (catches word reordering), and token overlap (catches
// shorter paraphrases of the same question).
func similarity(queryNorm string, queryTokens []string, question string) float64 {
	questionNorm := normalize(question)
	if queryNorm == "" || questionNorm == "" {
		return 0
	}
	if queryNorm == questionNorm {
		return 1
	}

	questionTokens := strings.Fields(questionNorm)

	score := editRatio(queryNorm, questionNorm)

	sortedQuery := sortedJoin(queryTokens)
	sortedQuestion := sortedJoin(questionTokens)
	if s := editRatio(sortedQuery, sortedQuestion); s > score {
		score = s
	}

	if s := tokenOverlap(queryTokens, questionTokens); s > score {
		score = s
	}

	return score
}

// editRatio converts Levenshtein distance to a [0,1] similarity.
func editRatio(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// tokenOverlap is the Sorensen-Dice coefficient over token sets.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, tok := range a {
		set[tok] = true
	}

	seen := make(map[string]bool, len(b))
	shared := 0
	for _, tok := range b {
		if set[tok] && !seen[tok] {
			shared++
			seen[tok] = true
		}
	}

	return 2 * float64(shared) / float64(len(set)+uniqueCount(b))
}

func uniqueCount(tokens []string) int {
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		seen[tok] = true
	}
	return len(seen)
}

func sortedJoin(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// normalize lowercases and strips punctuation so "Gate open?" and
// "gate open" compare equal.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
