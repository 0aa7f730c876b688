package model

import "time"

// Rating is the finer-grained classification providers report in
type Rating string

const (
	RatingTrue         Rating = "TRUE"
	RatingMostlyTrue   Rating = "MOSTLY_TRUE"
	RatingMixed        Rating = "MIXED"
	RatingMostlyFalse  Rating = "MOSTLY_FALSE"
	RatingFalse        Rating = "FALSE"
	RatingUnverifiable Rating = "UNVERIFIABLE"
	RatingUncertain    Rating = "UNCERTAIN"
)

// Canonical maps a provider rating to the 5-way verdict
func (r Rating) Canonical() Verdict {
	switch r {
	case RatingTrue, RatingMostlyTrue:
		return VerdictTrue
	case RatingMixed, RatingMostlyFalse:
		return VerdictMisleading
	case RatingFalse:
		return VerdictFalse
	case RatingUnverifiable:
		return VerdictUnverifiable
	default:
		return VerdictUncertain
	}
}

// Source is a publication that fact-checked a claim
type Source struct {
	Name    string     `json:"name"`
	URL     string     `json:"url,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Rating  Rating     `json:"rating"`
	Title   string     `json:"title,omitempty"`
	Excerpt string     `json:"excerpt,omitempty"`
}

// ProviderResult is one provider's answer for one claim
type ProviderResult struct {
	Claim       string         `json:"claim"`
	Rating      Rating         `json:"rating"`
	Confidence  float64        `json:"confidence"` // 0-100
	Sources     []Source       `json:"sources"`
	Explanation string         `json:"explanation,omitempty"`
	Provider    string         `json:"provider"`
	Raw         map[string]any `json:"-"` // opaque upstream payload
}
