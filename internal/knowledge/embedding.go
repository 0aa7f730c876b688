package knowledge

import (
	"context"
	"fmt"
	"math"
	"sync"

	openai "github.com/sashabaranov/go-openai"
	"gonum.org/v1/gonum/floats"
)

// EmbeddingMatcher scores by cosine similarity of sentence embeddings.
// Key embeddings are computed once on first use and cached; query embeddings
// are cached per text.
type EmbeddingMatcher struct {
	client *openai.Client
	model  openai.EmbeddingModel

	mu    sync.Mutex
	cache map[string][]float64
}

// NewEmbeddingMatcher creates an embedding matcher backed by the OpenAI
// embeddings API
func NewEmbeddingMatcher(apiKey, model string) (*EmbeddingMatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("embedding matcher requires an API key")
	}
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &EmbeddingMatcher{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
		cache:  make(map[string][]float64),
	}, nil
}

// BestMatch embeds the query and every uncached key, then picks the key with
// the highest cosine similarity
func (m *EmbeddingMatcher) BestMatch(ctx context.Context, query string, keys []string) (string, float64, error) {
	texts := append([]string{query}, keys...)
	if err := m.ensureEmbeddings(ctx, texts); err != nil {
		return "", 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	queryVec := m.cache[query]

	bestKey := ""
	bestScore := 0.0
	for _, key := range keys {
		score := cosineSimilarity(queryVec, m.cache[key])
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	return bestKey, bestScore, nil
}

// ensureEmbeddings fetches embeddings for any texts not yet cached, in one
// batched API call
func (m *EmbeddingMatcher) ensureEmbeddings(ctx context.Context, texts []string) error {
	m.mu.Lock()
	var missing []string
	for _, t := range texts {
		if _, ok := m.cache[t]; !ok {
			missing = append(missing, t)
		}
	}
	m.mu.Unlock()

	if len(missing) == 0 {
		return nil
	}

	resp, err := m.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: missing,
		Model: m.model,
	})
	if err != nil {
		return fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(missing) {
		return fmt.Errorf("expected %d embeddings, got %d", len(missing), len(resp.Data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range resp.Data {
		vec := make([]float64, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float64(v)
		}
		m.cache[missing[i]] = vec
	}
	return nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either has no magnitude
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	dot := floats.Dot(a, b)
	magA := math.Sqrt(floats.Dot(a, a))
	magB := math.Sqrt(floats.Dot(b, b))

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}
