package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

const factiverseBaseURL = "https://api.factiverse.ai/v1"

// Factiverse is an AI-assisted fact-checking and evidence search service.
// https://www.factiverse.ai/
type Factiverse struct {
	apiKey  string
	baseURL string
	http    *lazyClient
}

type factiverseRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type factiverseResponse struct {
	Verdict     string  `json:"verdict"`
	Confidence  float64 `json:"confidence"` // 0-1
	Explanation string  `json:"explanation"`
	Evidence    []struct {
		Source string `json:"source"`
		URL    string `json:"url"`
		Text   string `json:"text"`
	} `json:"evidence"`
}

// NewFactiverse creates a Factiverse client
func NewFactiverse(cfg model.FactiverseConfig, timeout time.Duration) *Factiverse {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = factiverseBaseURL
	}
	return &Factiverse{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    newLazyClient(timeout),
	}
}

func (f *Factiverse) Name() string { return "Factiverse" }

func (f *Factiverse) IsConfigured() bool { return f.apiKey != "" }

func (f *Factiverse) Close() { f.http.close() }

// VerifyClaim runs the claim through the Factiverse fact-check endpoint
func (f *Factiverse) VerifyClaim(ctx context.Context, claim string) (*model.ProviderResult, error) {
	if !f.IsConfigured() {
		return nil, nil
	}

	payload, err := json.Marshal(factiverseRequest{Text: claim, Language: "en"})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/fact-check", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.http.get().Do(req)
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

	var data factiverseResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	rating := NormalizeRating(data.Verdict)
	now := time.Now()

	var sources []model.Source
	for i, item := range data.Evidence {
		if i >= 5 {
			break
		}
		name := item.Source
		if name == "" {
			name = "Unknown"
		}
		excerpt := item.Text
		if runes := []rune(excerpt); len(runes) > 200 {
			excerpt = string(runes[:200])
		}
		sources = append(sources, model.Source{
			Name:    name,
			URL:     item.URL,
			Date:    &now,
			Rating:  rating,
			Excerpt: excerpt,
		})
	}

	explanation := data.Explanation
	if explanation == "" {
		explanation = factiverseExplanation(rating, len(sources))
	}

	var rawPayload map[string]any
	_ = json.Unmarshal(body, &rawPayload)

	return &model.ProviderResult{
		Claim:       claim,
		Rating:      rating,
		Confidence:  data.Confidence * 100,
		Sources:     sources,
		Explanation: explanation,
		Provider:    f.Name(),
		Raw:         rawPayload,
	}, nil
}

func factiverseExplanation(rating model.Rating, sourceCount int) string {
	desc := map[model.Rating]string{
		model.RatingTrue:         "verified as accurate",
		model.RatingMostlyTrue:   "largely supported",
		model.RatingMixed:        "partially supported with some inaccuracies",
		model.RatingMostlyFalse:  "largely contradicted",
		model.RatingFalse:        "contradicted",
		model.RatingUnverifiable: "could not be verified",
		model.RatingUncertain:    "requires further investigation",
	}[rating]
	if desc == "" {
		desc = "uncertain"
	}

	base := fmt.Sprintf("Analysis found this claim to be %s", desc)
	if sourceCount > 0 {
		return fmt.Sprintf("%s based on %d evidence source(s).", base, sourceCount)
	}
	return base + ", but evidence is limited."
}
