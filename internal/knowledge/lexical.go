package knowledge

import (
	"context"
	"strings"
)

// LexicalMatcher scores by word overlap: the fraction of a key's words that
// appear in the query. Cheap, deterministic, no external dependencies.
type LexicalMatcher struct{}

// NewLexicalMatcher creates a lexical overlap matcher
func NewLexicalMatcher() *LexicalMatcher {
	return &LexicalMatcher{}
}

// BestMatch returns the key with the highest word overlap against the query
func (m *LexicalMatcher) BestMatch(_ context.Context, query string, keys []string) (string, float64, error) {
	queryWords := wordSet(query)

	bestKey := ""
	bestScore := 0.0

	for _, key := range keys {
		keyWords := wordSet(key)
		if len(keyWords) == 0 {
			continue
		}

		overlap := 0
		for w := range keyWords {
			if queryWords[w] {
				overlap++
			}
		}

		score := float64(overlap) / float64(len(keyWords))
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	return bestKey, bestScore, nil
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[strings.Trim(w, ".,!?;:'\"")] = true
	}
	return set
}
