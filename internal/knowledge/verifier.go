package knowledge

import (
	"context"
	"strings"

	"github.com/ppiankov/veridex/internal/model"
)

// Match is the outcome of a local knowledge lookup
type Match struct {
	Key         string
	Similarity  float64
	Verdict     model.Verdict
	Confidence  float64
	Explanation string
	Evidence    []string
	Sources     []string
}

// Verifier resolves claims against the fact store through a similarity
// matcher selected at construction time.
type Verifier struct {
	store     *Store
	matcher   Matcher
	threshold float64
}

// NewVerifier creates a verifier. threshold is the minimum similarity a
// matcher hit needs to count.
func NewVerifier(store *Store, matcher Matcher, threshold float64) *Verifier {
	if threshold <= 0 {
		threshold = 0.8
	}
	return &Verifier{
		store:     store,
		matcher:   matcher,
		threshold: threshold,
	}
}

// NewVerifierFromConfig wires the matcher variant the config names,
// degrading to lexical matching when the embedding backend is unavailable.
func NewVerifierFromConfig(cfg model.KnowledgeConfig, openAIKey string) *Verifier {
	store := NewStore()

	var matcher Matcher
	if cfg.Matcher == "embedding" {
		if em, err := NewEmbeddingMatcher(openAIKey, cfg.EmbeddingModel); err == nil {
			matcher = em
		}
	}
	if matcher == nil {
		matcher = NewLexicalMatcher()
	}

	return NewVerifier(store, matcher, cfg.Threshold)
}

// Search looks the claim up in the fact table. A nil Match means the claim is
// unknown locally. Exact phrase containment wins before the matcher runs.
func (v *Verifier) Search(ctx context.Context, claim string) (*Match, error) {
	lower := strings.ToLower(strings.TrimSpace(claim))

	for _, key := range v.store.Keys() {
		if strings.Contains(lower, key) {
			return v.match(key, 1.0), nil
		}
	}

	key, score, err := v.matcher.BestMatch(ctx, lower, v.store.Keys())
	if err != nil {
		return nil, err
	}
	if key == "" || score < v.threshold {
		return nil, nil
	}

	return v.match(key, score), nil
}

func (v *Verifier) match(key string, similarity float64) *Match {
	fact, _ := v.store.Lookup(key)
	return &Match{
		Key:         key,
		Similarity:  similarity,
		Verdict:     fact.Verdict,
		Confidence:  fact.Confidence,
		Explanation: fact.Explanation,
		Evidence:    fact.Evidence,
		Sources:     fact.Sources,
	}
}
