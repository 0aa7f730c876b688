package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

const googleFactCheckBaseURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// GoogleFactCheck queries the Google Fact Check Tools claim search API.
// https://developers.google.com/fact-check/tools/api
type GoogleFactCheck struct {
	apiKey  string
	baseURL string
	http    *lazyClient
}

// Google API structures
type googleClaimsResponse struct {
	Claims []googleClaim `json:"claims"`
}

type googleClaim struct {
	Text        string              `json:"text"`
	Claimant    string              `json:"claimant"`
	ClaimReview []googleClaimReview `json:"claimReview"`
}

type googleClaimReview struct {
	Publisher struct {
		Name string `json:"name"`
		Site string `json:"site"`
	} `json:"publisher"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	ReviewDate    string `json:"reviewDate"`
	TextualRating string `json:"textualRating"`
}

// NewGoogleFactCheck creates a Google Fact Check client
func NewGoogleFactCheck(cfg model.GoogleConfig, timeout time.Duration) *GoogleFactCheck {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = googleFactCheckBaseURL
	}
	return &GoogleFactCheck{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    newLazyClient(timeout),
	}
}

func (g *GoogleFactCheck) Name() string { return "Google Fact Check" }

func (g *GoogleFactCheck) IsConfigured() bool { return g.apiKey != "" }

func (g *GoogleFactCheck) Close() { g.http.close() }

// VerifyClaim searches published fact-checks for the claim
func (g *GoogleFactCheck) VerifyClaim(ctx context.Context, claim string) (*model.ProviderResult, error) {
	if !g.IsConfigured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("query", claim)
	params.Set("languageCode", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.http.get().Do(req)
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

	var data googleClaimsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// No published fact-checks is "no opinion", not an error
	if len(data.Claims) == 0 {
		return nil, nil
	}

	return g.parseClaim(claim, data.Claims[0], body), nil
}

// parseClaim converts the best-matching claim entry into a result
func (g *GoogleFactCheck) parseClaim(original string, claim googleClaim, raw []byte) *model.ProviderResult {
	if len(claim.ClaimReview) == 0 {
		return nil
	}

	var sources []model.Source
	var ratings []model.Rating

	for _, review := range claim.ClaimReview {
		rating := NormalizeRating(review.TextualRating)
		ratings = append(ratings, rating)

		name := review.Publisher.Name
		if name == "" {
			name = "Unknown"
		}

		source := model.Source{
			Name:    name,
			URL:     review.URL,
			Rating:  rating,
			Title:   review.Title,
			Excerpt: claim.Text,
		}
		if review.ReviewDate != "" {
			if t, err := time.Parse(time.RFC3339, review.ReviewDate); err == nil {
				source.Date = &t
			}
		}
		sources = append(sources, source)
	}

	// Google orders reviews by relevance; the first rating leads
	overall := ratings[0]

	claimText := claim.Text
	if claimText == "" {
		claimText = original
	}

	var rawPayload map[string]any
	_ = json.Unmarshal(raw, &rawPayload)

	return &model.ProviderResult{
		Claim:       claimText,
		Rating:      overall,
		Confidence:  googleConfidence(ratings),
		Sources:     sources,
		Explanation: googleExplanation(sources, overall),
		Provider:    g.Name(),
		Raw:         rawPayload,
	}
}

// googleConfidence scores on source count and agreement, capped at 95
func googleConfidence(ratings []model.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	confidence := minFloat(float64(len(ratings))*15, 60)

	agree := true
	for _, r := range ratings[1:] {
		if r != ratings[0] {
			agree = false
			break
		}
	}
	if agree {
		confidence += 30
	}
	if len(ratings) >= 3 {
		confidence += 10
	}

	return minFloat(confidence, 95)
}

func googleExplanation(sources []model.Source, rating model.Rating) string {
	if len(sources) == 0 {
		return "No fact-checks found for this claim."
	}

	desc := map[model.Rating]string{
		model.RatingTrue:         "verified as true",
		model.RatingMostlyTrue:   "rated as mostly true",
		model.RatingMixed:        "received mixed ratings",
		model.RatingMostlyFalse:  "rated as mostly false",
		model.RatingFalse:        "debunked as false",
		model.RatingUnverifiable: "could not be verified",
		model.RatingUncertain:    "received uncertain ratings",
	}[rating]
	if desc == "" {
		desc = "was fact-checked"
	}

	if len(sources) == 1 {
		return fmt.Sprintf("This claim was %s by %s.", desc, sources[0].Name)
	}
	return fmt.Sprintf("This claim was %s by %d independent fact-checkers.", desc, len(sources))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
