// Package strategy decides which verification strategy a request gets.
// It is the admission-control gate in front of expensive external calls.
package strategy

import (
	"strings"

	"github.com/ppiankov/veridex/internal/model"
)

// superlatives raise claim complexity: such claims tend to need external checking
var superlatives = []string{"biggest", "largest", "most", "least", "first", "last", "only"}

// Factors are the inputs the decision table runs on
type Factors struct {
	Complexity      float64 // 0.0 to 1.0
	ClaimCount      int
	HasNumbers      bool
	HasSuperlatives bool
	ContentLength   int
}

// Decisor picks LOCAL_ONLY / CLOUD_ONLY / HYBRID for a request
type Decisor struct {
	cloudAvailable bool
}

// NewDecisor creates a decisor. cloudAvailable is false when no provider is
// configured or local-only mode is forced.
func NewDecisor(cloudAvailable bool) *Decisor {
	return &Decisor{cloudAvailable: cloudAvailable}
}

// Decide returns the verification strategy for the given claims.
// Deterministic and side-effect free given identical inputs.
func (d *Decisor) Decide(claims []string, contentLength int, cacheAvailable bool, userPreference model.VerificationStrategy) model.VerificationStrategy {
	// A known cache hit means the caller already has an answer; keep the
	// function total by answering LOCAL_ONLY.
	if cacheAvailable {
		return model.StrategyLocalOnly
	}

	if !d.cloudAvailable || userPreference == model.StrategyLocalOnly {
		return model.StrategyLocalOnly
	}

	if userPreference == model.StrategyCloudOnly {
		return model.StrategyCloudOnly
	}

	factors := calculateFactors(claims, contentLength)
	return d.decide(factors)
}

// calculateFactors derives the complexity score and claim characteristics
func calculateFactors(claims []string, contentLength int) Factors {
	f := Factors{
		ClaimCount:    len(claims),
		ContentLength: contentLength,
	}
	if f.ClaimCount == 0 {
		return f
	}

	complexity := minFloat(float64(f.ClaimCount)/10, 0.3)

	totalWords := 0
	for _, claim := range claims {
		totalWords += len(strings.Fields(claim))
	}
	avgWords := float64(totalWords) / float64(f.ClaimCount)
	complexity += minFloat(avgWords/50, 0.3)

	for _, claim := range claims {
		if hasDigit(claim) {
			f.HasNumbers = true
			break
		}
	}
	if f.HasNumbers {
		complexity += 0.2
	}

	for _, claim := range claims {
		lower := strings.ToLower(claim)
		for _, word := range superlatives {
			if strings.Contains(lower, word) {
				f.HasSuperlatives = true
				break
			}
		}
		if f.HasSuperlatives {
			break
		}
	}
	if f.HasSuperlatives {
		complexity += 0.2
	}

	f.Complexity = minFloat(complexity, 1.0)
	return f
}

// decide runs the decision table over the factors
func (d *Decisor) decide(f Factors) model.VerificationStrategy {
	// No claims: a quick local check suffices
	if f.ClaimCount == 0 {
		return model.StrategyLocalOnly
	}

	// Simple content stays local
	if f.Complexity < 0.3 && f.ClaimCount <= 2 {
		return model.StrategyLocalOnly
	}

	// High complexity or many claims
	if f.Complexity > 0.6 || f.ClaimCount > 5 {
		if d.cloudAvailable {
			return model.StrategyHybrid
		}
		return model.StrategyLocalOnly
	}

	// Statistical or superlative claims benefit from external checking
	if (f.HasNumbers || f.HasSuperlatives) && d.cloudAvailable {
		return model.StrategyHybrid
	}

	return model.StrategyLocalOnly
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
