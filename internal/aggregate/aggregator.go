// Package aggregate reduces heterogeneous provider results into a single
// canonical verdict with a blended confidence score.
package aggregate

import (
	"fmt"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

// Aggregator computes consensus over provider results. It is total: it never
// fails, and empty input yields the defined UNCERTAIN default.
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate reduces the provider results into one VerificationResult.
// StrategyUsed and ProcessingTime are left for the engine to stamp.
func (a *Aggregator) Aggregate(results []model.ProviderResult) model.VerificationResult {
	if len(results) == 0 {
		return model.VerificationResult{
			Verdict:     model.VerdictUncertain,
			Confidence:  0,
			Explanation: "No fact-checking results available from external services.",
			Sources:     []string{},
			Evidence:    []string{},
			Timestamp:   time.Now().UTC(),
			Metadata:    map[string]any{"provider_count": 0, "source_count": 0},
		}
	}

	ratings := make([]model.Rating, 0, len(results))
	confidences := make([]float64, 0, len(results))
	var sources []string
	var evidence []string

	for _, r := range results {
		ratings = append(ratings, r.Rating)
		confidences = append(confidences, r.Confidence)
		for _, s := range r.Sources {
			sources = append(sources, s.Name)
		}
		if r.Explanation != "" {
			evidence = append(evidence, fmt.Sprintf("[%s] %s", r.Provider, r.Explanation))
		}
	}

	verdict := determineVerdict(ratings)
	confidence := blendConfidence(ratings, confidences)
	unique := uniqueStrings(sources)

	totalSources := 0
	for _, r := range results {
		totalSources += len(r.Sources)
	}

	return model.VerificationResult{
		Verdict:     verdict,
		Confidence:  confidence,
		Explanation: explanation(len(results), verdict, totalSources),
		Sources:     unique,
		Evidence:    evidence,
		Timestamp:   time.Now().UTC(),
		Metadata: map[string]any{
			"provider_count":      len(results),
			"source_count":        len(unique),
			"rating_distribution": ratingDistribution(ratings),
		},
	}
}

// determineVerdict picks the most frequent raw rating (first appearance
// breaks ties) and canonicalizes it. Three or more distinct ratings across
// three or more results is too much disagreement for any verdict but
// UNCERTAIN, regardless of the mode.
func determineVerdict(ratings []model.Rating) model.Verdict {
	if len(ratings) == 0 {
		return model.VerdictUncertain
	}

	counts := make(map[model.Rating]int)
	for _, r := range ratings {
		counts[r]++
	}

	mode := ratings[0]
	for _, r := range ratings {
		if counts[r] > counts[mode] {
			mode = r
		}
	}

	if len(counts) >= 3 && len(ratings) >= 3 {
		return model.VerdictUncertain
	}

	return mode.Canonical()
}

// blendConfidence averages provider confidences, then rewards agreement and
// multiple results. The agreement bonus is negative below 50% agreement.
func blendConfidence(ratings []model.Rating, confidences []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, c := range confidences {
		sum += c
	}
	avg := sum / float64(len(confidences))

	counts := make(map[model.Rating]int)
	for _, r := range ratings {
		counts[r]++
	}
	modeCount := 0
	for _, n := range counts {
		if n > modeCount {
			modeCount = n
		}
	}

	agreementBonus := (float64(modeCount)/float64(len(ratings)) - 0.5) * 40
	sourceBonus := minFloat(float64(len(ratings))*5, 15)

	total := avg + agreementBonus + sourceBonus
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

func explanation(providerCount int, verdict model.Verdict, sourceCount int) string {
	verdictText := map[model.Verdict]string{
		model.VerdictTrue:         "supports this claim",
		model.VerdictFalse:        "contradicts this claim",
		model.VerdictMisleading:   "finds this claim partially accurate but misleading",
		model.VerdictUnverifiable: "cannot verify this claim",
		model.VerdictUncertain:    "provides mixed assessments of this claim",
	}[verdict]
	if verdictText == "" {
		verdictText = "analyzed this claim"
	}

	base := fmt.Sprintf("Analysis from %d fact-checking service(s) %s", providerCount, verdictText)
	if sourceCount > 0 {
		return fmt.Sprintf("%s, citing %d source(s).", base, sourceCount)
	}
	return base + "."
}

func ratingDistribution(ratings []model.Rating) map[string]int {
	dist := make(map[string]int)
	for _, r := range ratings {
		dist[string(r)]++
	}
	return dist
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool)
	unique := []string{}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
