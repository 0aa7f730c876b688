package model

import (
	"math"
	"time"
)

// VerificationResult is the final answer for a verification request.
// Verdict is never unset: a total failure still yields UNCERTAIN/0.
type VerificationResult struct {
	Verdict        Verdict              `json:"verdict"`
	Confidence     float64              `json:"confidence"` // 0-100
	Explanation    string               `json:"explanation"`
	Sources        []string             `json:"sources"`
	Evidence       []string             `json:"evidence"`
	StrategyUsed   VerificationStrategy `json:"strategy_used,omitempty"`
	ProcessingTime float64              `json:"processing_time"` // seconds
	Timestamp      time.Time            `json:"timestamp"`
	Metadata       map[string]any       `json:"metadata"`
}

// Response is the wire form of a result: confidence rounded to 2 decimals,
// processing time to 3, timestamp in ISO-8601.
type Response struct {
	Verdict        string         `json:"verdict"`
	Confidence     float64        `json:"confidence"`
	Explanation    string         `json:"explanation"`
	Sources        []string       `json:"sources"`
	Evidence       []string       `json:"evidence"`
	Strategy       string         `json:"strategy,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
	Timestamp      string         `json:"timestamp"`
	Metadata       map[string]any `json:"metadata"`
}

// ToResponse converts a result to its wire form
func (r VerificationResult) ToResponse() Response {
	sources := r.Sources
	if sources == nil {
		sources = []string{}
	}
	evidence := r.Evidence
	if evidence == nil {
		evidence = []string{}
	}
	return Response{
		Verdict:        string(r.Verdict),
		Confidence:     roundTo(r.Confidence, 2),
		Explanation:    r.Explanation,
		Sources:        sources,
		Evidence:       evidence,
		Strategy:       string(r.StrategyUsed),
		ProcessingTime: roundTo(r.ProcessingTime, 3),
		Timestamp:      r.Timestamp.Format(time.RFC3339),
		Metadata:       r.Metadata,
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
