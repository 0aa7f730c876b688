package aggregate

import (
	"strings"
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func result(provider string, rating model.Rating, confidence float64, sources ...string) model.ProviderResult {
	srcs := make([]model.Source, len(sources))
	for i, s := range sources {
		srcs[i] = model.Source{Name: s, Rating: rating}
	}
	return model.ProviderResult{
		Claim:       "test claim",
		Rating:      rating,
		Confidence:  confidence,
		Sources:     srcs,
		Explanation: "because reasons",
		Provider:    provider,
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate(nil)

	if got.Verdict != model.VerdictUncertain {
		t.Errorf("verdict = %s, want UNCERTAIN", got.Verdict)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %f, want 0", got.Confidence)
	}
	if got.Explanation != "No fact-checking results available from external services." {
		t.Errorf("unexpected explanation: %q", got.Explanation)
	}
	if got.Sources == nil || len(got.Sources) != 0 {
		t.Errorf("sources should be empty non-nil, got %v", got.Sources)
	}
	if got.Metadata["provider_count"] != 0 {
		t.Errorf("provider_count = %v, want 0", got.Metadata["provider_count"])
	}
}

func TestAggregate_Consensus(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate([]model.ProviderResult{
		result("google_factcheck", model.RatingFalse, 80, "Snopes"),
		result("claimbuster", model.RatingFalse, 70, "PolitiFact"),
	})

	if got.Verdict != model.VerdictFalse {
		t.Errorf("verdict = %s, want FALSE", got.Verdict)
	}
	// avg 75 + agreement (1.0-0.5)*40=20 + source bonus 10 = 100 (clamped)
	if got.Confidence != 100 {
		t.Errorf("confidence = %f, want 100", got.Confidence)
	}
	if len(got.Sources) != 2 {
		t.Errorf("sources = %v, want 2 entries", got.Sources)
	}
}

func TestAggregate_DisagreementOverride(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate([]model.ProviderResult{
		result("google_factcheck", model.RatingTrue, 90),
		result("claimbuster", model.RatingFalse, 90),
		result("factiverse", model.RatingMixed, 90),
	})

	if got.Verdict != model.VerdictUncertain {
		t.Errorf("three-way disagreement should yield UNCERTAIN, got %s", got.Verdict)
	}
}

func TestAggregate_TwoDistinctRatingsNoOverride(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate([]model.ProviderResult{
		result("google_factcheck", model.RatingFalse, 80),
		result("claimbuster", model.RatingFalse, 75),
		result("factiverse", model.RatingTrue, 60),
	})

	// Only two distinct ratings, so the mode wins.
	if got.Verdict != model.VerdictFalse {
		t.Errorf("verdict = %s, want FALSE", got.Verdict)
	}
}

func TestDetermineVerdict_TieBreak(t *testing.T) {
	// Equal counts: the first rating encountered wins.
	got := determineVerdict([]model.Rating{model.RatingTrue, model.RatingFalse})
	if got != model.VerdictTrue {
		t.Errorf("tie-break should favor first appearance, got %s", got)
	}

	got = determineVerdict([]model.Rating{model.RatingFalse, model.RatingTrue})
	if got != model.VerdictFalse {
		t.Errorf("tie-break should favor first appearance, got %s", got)
	}
}

func TestDetermineVerdict_CanonicalMapping(t *testing.T) {
	tests := []struct {
		rating model.Rating
		want   model.Verdict
	}{
		{model.RatingMostlyTrue, model.VerdictTrue},
		{model.RatingMixed, model.VerdictMisleading},
		{model.RatingMostlyFalse, model.VerdictMisleading},
		{model.RatingUnverifiable, model.VerdictUnverifiable},
		{model.RatingUncertain, model.VerdictUncertain},
	}
	for _, tt := range tests {
		if got := determineVerdict([]model.Rating{tt.rating}); got != tt.want {
			t.Errorf("determineVerdict(%s) = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestBlendConfidence_Bounds(t *testing.T) {
	cases := [][]model.ProviderResult{
		{result("a", model.RatingTrue, 0)},
		{result("a", model.RatingTrue, 100), result("b", model.RatingTrue, 100), result("c", model.RatingTrue, 100)},
		{result("a", model.RatingTrue, 10), result("b", model.RatingFalse, 10), result("c", model.RatingMixed, 10), result("d", model.RatingUncertain, 10)},
	}

	agg := NewAggregator()
	for i, results := range cases {
		got := agg.Aggregate(results)
		if got.Confidence < 0 || got.Confidence > 100 {
			t.Errorf("case %d: confidence %f out of [0,100]", i, got.Confidence)
		}
	}
}

func TestBlendConfidence_AgreementPenalty(t *testing.T) {
	// Four-way split: mode fraction 0.25 gives a negative agreement bonus.
	ratings := []model.Rating{model.RatingTrue, model.RatingFalse, model.RatingMixed, model.RatingUncertain}
	confidences := []float64{50, 50, 50, 50}

	got := blendConfidence(ratings, confidences)
	// 50 + (0.25-0.5)*40 + 15 = 55
	if got != 55 {
		t.Errorf("blendConfidence = %f, want 55", got)
	}
}

func TestAggregate_Metadata(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate([]model.ProviderResult{
		result("a", model.RatingFalse, 80, "Snopes"),
		result("b", model.RatingFalse, 70, "Snopes"),
		result("c", model.RatingTrue, 60, "Reuters"),
	})

	dist, ok := got.Metadata["rating_distribution"].(map[string]int)
	if !ok {
		t.Fatalf("rating_distribution missing or wrong type: %v", got.Metadata)
	}
	if dist["FALSE"] != 2 || dist["TRUE"] != 1 {
		t.Errorf("distribution = %v", dist)
	}

	// Duplicate source names collapse.
	if len(got.Sources) != 2 {
		t.Errorf("sources = %v, want deduplicated to 2", got.Sources)
	}
	if got.Metadata["source_count"] != 2 {
		t.Errorf("source_count = %v, want 2", got.Metadata["source_count"])
	}
}

func TestAggregate_Evidence(t *testing.T) {
	agg := NewAggregator()
	got := agg.Aggregate([]model.ProviderResult{
		result("google_factcheck", model.RatingFalse, 80),
	})

	if len(got.Evidence) != 1 {
		t.Fatalf("evidence = %v, want 1 entry", got.Evidence)
	}
	if !strings.HasPrefix(got.Evidence[0], "[google_factcheck] ") {
		t.Errorf("evidence lacks provider tag: %q", got.Evidence[0])
	}
}
