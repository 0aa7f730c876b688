package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

const claimBusterBaseURL = "https://idir.uta.edu/claimbuster/api/v2/score/text"

// ClaimBuster scores how check-worthy a claim is rather than checking it.
// High scores map to UNCERTAIN (worth verifying), low scores to UNVERIFIABLE.
// https://idir.uta.edu/claimbuster/
type ClaimBuster struct {
	apiKey  string
	baseURL string
	http    *lazyClient
}

type claimBusterRequest struct {
	InputText string `json:"input_text"`
}

type claimBusterResponse struct {
	Results []struct {
		Text  string  `json:"text"`
		Score float64 `json:"score"`
	} `json:"results"`
}

// NewClaimBuster creates a ClaimBuster client
func NewClaimBuster(cfg model.ClaimBusterConfig, timeout time.Duration) *ClaimBuster {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = claimBusterBaseURL
	}
	return &ClaimBuster{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    newLazyClient(timeout),
	}
}

func (c *ClaimBuster) Name() string { return "ClaimBuster" }

func (c *ClaimBuster) IsConfigured() bool { return c.apiKey != "" }

func (c *ClaimBuster) Close() { c.http.close() }

// VerifyClaim scores the claim's check-worthiness
func (c *ClaimBuster) VerifyClaim(ctx context.Context, claim string) (*model.ProviderResult, error) {
	if !c.IsConfigured() {
		return nil, nil
	}

	payload, err := json.Marshal(claimBusterRequest{InputText: claim})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.get().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var data claimBusterResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(data.Results) == 0 {
		return nil, nil
	}

	score := data.Results[0].Score

	var rating model.Rating
	var explanation string
	switch {
	case score >= 0.7:
		rating = model.RatingUncertain
		explanation = fmt.Sprintf("This claim has a high check-worthiness score (%.2f), indicating it makes factual assertions that should be verified. Further fact-checking recommended.", score)
	case score >= 0.5:
		rating = model.RatingUncertain
		explanation = fmt.Sprintf("This claim has a moderate check-worthiness score (%.2f), suggesting it contains some factual elements worth investigating.", score)
	default:
		rating = model.RatingUnverifiable
		explanation = fmt.Sprintf("This claim has a low check-worthiness score (%.2f), indicating it may be opinion-based or not contain verifiable factual claims.", score)
	}

	now := time.Now()
	source := model.Source{
		Name:    "ClaimBuster",
		URL:     "https://idir.uta.edu/claimbuster/",
		Date:    &now,
		Rating:  rating,
		Title:   fmt.Sprintf("Check-worthiness Score: %.2f", score),
		Excerpt: claim,
	}

	var rawPayload map[string]any
	_ = json.Unmarshal(body, &rawPayload)

	return &model.ProviderResult{
		Claim:       claim,
		Rating:      rating,
		Confidence:  score * 100,
		Sources:     []model.Source{source},
		Explanation: explanation,
		Provider:    c.Name(),
		Raw:         rawPayload,
	}, nil
}
