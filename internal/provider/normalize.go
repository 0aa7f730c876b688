package provider

import (
	"strings"

	"github.com/ppiankov/veridex/internal/model"
)

// NormalizeRating maps the free-text ratings fact-checkers publish
// ("Pants on Fire", "Mostly True", "Debunked") onto the standard scale
func NormalizeRating(raw string) model.Rating {
	lower := strings.ToLower(strings.TrimSpace(raw))

	if containsAny(lower, "true", "correct", "accurate", "verified") {
		if containsAny(lower, "mostly", "partially", "somewhat") {
			return model.RatingMostlyTrue
		}
		return model.RatingTrue
	}

	if containsAny(lower, "false", "incorrect", "inaccurate", "debunked") {
		if containsAny(lower, "mostly", "partially", "somewhat") {
			return model.RatingMostlyFalse
		}
		return model.RatingFalse
	}

	if containsAny(lower, "mixed", "half", "partly") {
		return model.RatingMixed
	}

	if containsAny(lower, "unverifiable", "unproven", "inconclusive") {
		return model.RatingUnverifiable
	}

	return model.RatingUncertain
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
