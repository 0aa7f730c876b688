package model

import (
	"testing"
	"time"
)

func TestRatingCanonical(t *testing.T) {
	tests := []struct {
		rating Rating
		want   Verdict
	}{
		{RatingTrue, VerdictTrue},
		{RatingMostlyTrue, VerdictTrue},
		{RatingMixed, VerdictMisleading},
		{RatingMostlyFalse, VerdictMisleading},
		{RatingFalse, VerdictFalse},
		{RatingUnverifiable, VerdictUnverifiable},
		{RatingUncertain, VerdictUncertain},
		{Rating("SOMETHING_ELSE"), VerdictUncertain},
	}
	for _, tt := range tests {
		if got := tt.rating.Canonical(); got != tt.want {
			t.Errorf("%s.Canonical() = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestParseStrategyHint(t *testing.T) {
	tests := []struct {
		hint string
		want VerificationStrategy
	}{
		{"local", StrategyLocalOnly},
		{"cloud", StrategyCloudOnly},
		{"hybrid", StrategyHybrid},
		{"", StrategyHybrid},
		{"LOCAL", StrategyHybrid},
		{"anything", StrategyHybrid},
	}
	for _, tt := range tests {
		if got := ParseStrategyHint(tt.hint); got != tt.want {
			t.Errorf("ParseStrategyHint(%q) = %s, want %s", tt.hint, got, tt.want)
		}
	}
}

func TestToResponse_Rounding(t *testing.T) {
	r := VerificationResult{
		Verdict:        VerdictFalse,
		Confidence:     92.456789,
		Explanation:    "contradicted",
		StrategyUsed:   StrategyHybrid,
		ProcessingTime: 1.23456789,
		Timestamp:      time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
	}

	resp := r.ToResponse()
	if resp.Confidence != 92.46 {
		t.Errorf("confidence = %f, want 92.46", resp.Confidence)
	}
	if resp.ProcessingTime != 1.235 {
		t.Errorf("processing time = %f, want 1.235", resp.ProcessingTime)
	}
	if resp.Timestamp != "2026-08-01T12:30:00Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}
	if resp.Verdict != "FALSE" || resp.Strategy != "hybrid" {
		t.Errorf("verdict/strategy = %s/%s", resp.Verdict, resp.Strategy)
	}

	// nil slices become empty lists so JSON consumers never see null
	if resp.Sources == nil || resp.Evidence == nil {
		t.Error("sources and evidence should be non-nil")
	}
}

func TestProcessedContent_RepresentativeClaim(t *testing.T) {
	withClaims := ProcessedContent{
		CleanedText: "full text",
		Claims:      []string{"first claim", "second claim"},
	}
	if got := withClaims.RepresentativeClaim(); got != "first claim" {
		t.Errorf("RepresentativeClaim = %q", got)
	}

	withoutClaims := ProcessedContent{CleanedText: "full text"}
	if got := withoutClaims.RepresentativeClaim(); got != "full text" {
		t.Errorf("RepresentativeClaim = %q", got)
	}
	if withoutClaims.HasClaims() {
		t.Error("HasClaims should be false")
	}
}
