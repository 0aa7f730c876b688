package strategy

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func TestDecide_CacheHitShortCircuits(t *testing.T) {
	d := NewDecisor(true)

	got := d.Decide([]string{"The Earth is round"}, 100, true, model.StrategyCloudOnly)
	if got != model.StrategyLocalOnly {
		t.Errorf("cache hit: expected LOCAL_ONLY, got %s", got)
	}
}

func TestDecide_CloudUnavailable(t *testing.T) {
	d := NewDecisor(false)

	claims := []string{
		"The GDP grew by 8% in 2024 according to the ministry.",
		"The project cost 3 billion dollars over five years.",
		"It was the largest investment ever recorded in the region.",
		"Every district reported higher employment figures.",
		"The ministry stated the figures were audited twice.",
		"Officials claimed the largest surplus in 40 years.",
	}

	got := d.Decide(claims, 500, false, model.StrategyHybrid)
	if got != model.StrategyLocalOnly {
		t.Errorf("no providers: expected LOCAL_ONLY, got %s", got)
	}
}

func TestDecide_UserPreference(t *testing.T) {
	d := NewDecisor(true)

	if got := d.Decide([]string{"Claim with 42 numbers"}, 100, false, model.StrategyLocalOnly); got != model.StrategyLocalOnly {
		t.Errorf("local preference: got %s", got)
	}
	if got := d.Decide([]string{"Claim with 42 numbers"}, 100, false, model.StrategyCloudOnly); got != model.StrategyCloudOnly {
		t.Errorf("cloud preference: got %s", got)
	}
}

func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name   string
		cloud  bool
		claims []string
		want   model.VerificationStrategy
	}{
		{
			name:   "no claims",
			cloud:  true,
			claims: nil,
			want:   model.StrategyLocalOnly,
		},
		{
			name:   "simple low complexity",
			cloud:  true,
			claims: []string{"Cats sleep most of the day"},
			// superlative "most" raises complexity to 0.3+ and triggers the
			// superlative rule
			want: model.StrategyHybrid,
		},
		{
			name:   "two plain claims stay local",
			cloud:  true,
			claims: []string{"Water is wet something", "Grass appears green in spring"},
			want:   model.StrategyLocalOnly,
		},
		{
			name:  "many claims go hybrid",
			cloud: true,
			claims: []string{
				"The vote passed with support from many members.",
				"Turnout reached record levels across the country.",
				"The chamber approved the measure after debate.",
				"The bill heads to committee for further review.",
				"Leaders praised the outcome in public remarks.",
				"Several amendments were rejected during the session.",
			},
			want: model.StrategyHybrid,
		},
		{
			name:   "numeric claim goes hybrid",
			cloud:  true,
			claims: []string{"Inflation reached 9% in June", "Rates rose again in July", "Wages lagged behind prices"},
			want:   model.StrategyHybrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecisor(tt.cloud)
			got := d.Decide(tt.claims, 200, false, model.StrategyHybrid)
			if got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateFactors(t *testing.T) {
	claims := []string{
		"The budget grew by 12% last year.",
		"It was the largest increase on record.",
	}
	f := calculateFactors(claims, 300)

	if f.ClaimCount != 2 {
		t.Errorf("claim count = %d, want 2", f.ClaimCount)
	}
	if !f.HasNumbers {
		t.Error("expected HasNumbers")
	}
	if !f.HasSuperlatives {
		t.Error("expected HasSuperlatives")
	}
	if f.Complexity <= 0 || f.Complexity > 1 {
		t.Errorf("complexity %f out of range", f.Complexity)
	}
}

func TestCalculateFactors_Empty(t *testing.T) {
	f := calculateFactors(nil, 0)
	if f.Complexity != 0 || f.ClaimCount != 0 || f.HasNumbers || f.HasSuperlatives {
		t.Errorf("empty claims should produce zero factors, got %+v", f)
	}
}

// TestDecide_Deterministic verifies purity: identical inputs always produce
// identical output, over randomized claim sets.
func TestDecide_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"the", "largest", "study", "shows", "42", "cities", "grew", "rapidly", "every", "year", "perhaps", "slowly"}

	for i := 0; i < 100; i++ {
		n := rng.Intn(8)
		claims := make([]string, n)
		for j := range claims {
			var sb strings.Builder
			for k := 0; k < 3+rng.Intn(10); k++ {
				sb.WriteString(words[rng.Intn(len(words))])
				sb.WriteString(" ")
			}
			claims[j] = strings.TrimSpace(sb.String())
		}
		contentLength := rng.Intn(2000)
		cloud := rng.Intn(2) == 0

		d := NewDecisor(cloud)
		first := d.Decide(claims, contentLength, false, model.StrategyHybrid)
		for r := 0; r < 5; r++ {
			if got := d.Decide(claims, contentLength, false, model.StrategyHybrid); got != first {
				t.Fatalf("iteration %d: Decide() not deterministic: %s then %s (claims=%s)",
					i, first, got, fmt.Sprint(claims))
			}
		}
	}
}
