package provider

import (
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Rating
	}{
		{"True", model.RatingTrue},
		{"TRUE", model.RatingTrue},
		{"Correct", model.RatingTrue},
		{"Accurate", model.RatingTrue},
		{"Verified", model.RatingTrue},
		{"Mostly True", model.RatingMostlyTrue},
		{"Partially correct", model.RatingMostlyTrue},
		{"False", model.RatingFalse},
		{"Pants on Fire! False", model.RatingFalse},
		{"Debunked", model.RatingFalse},
		{"Mostly False", model.RatingMostlyFalse},
		{"Partially false", model.RatingMostlyFalse},
		{"Mixed", model.RatingMixed},
		{"Partly right, partly wrong", model.RatingMixed},
		{"Unproven", model.RatingUnverifiable},
		{"Inconclusive", model.RatingUnverifiable},
		{"Four Pinocchios", model.RatingUncertain},
		{"", model.RatingUncertain},
		{"  Legend  ", model.RatingUncertain},

		// Substring matching makes these land in the true branch:
		// "half true" contains "true", "incorrect" contains "correct".
		{"Half True", model.RatingTrue},
		{"Incorrect", model.RatingTrue},
		{"Somewhat inaccurate", model.RatingMostlyTrue},
	}

	for _, tt := range tests {
		if got := NormalizeRating(tt.raw); got != tt.want {
			t.Errorf("NormalizeRating(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
