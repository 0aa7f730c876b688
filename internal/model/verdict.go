package model

// Verdict is the canonical user-facing classification of a claim
type Verdict string

const (
	VerdictTrue         Verdict = "TRUE"
	VerdictFalse        Verdict = "FALSE"
	VerdictMisleading   Verdict = "MISLEADING"
	VerdictUnverifiable Verdict = "UNVERIFIABLE"
	VerdictUncertain    Verdict = "UNCERTAIN"
)

// VerificationStrategy selects how a request is verified
type VerificationStrategy string

const (
	StrategyLocalOnly VerificationStrategy = "local_only" // Fast, local knowledge only
	StrategyCloudOnly VerificationStrategy = "cloud_only" // External fact-check providers only
	StrategyHybrid    VerificationStrategy = "hybrid"     // Local first, cloud on low confidence
)

// ParseStrategyHint maps a request hint ("local", "cloud", "hybrid") to a
// strategy. Unrecognized or empty hints default to hybrid.
func ParseStrategyHint(hint string) VerificationStrategy {
	switch hint {
	case "local":
		return StrategyLocalOnly
	case "cloud":
		return StrategyCloudOnly
	default:
		return StrategyHybrid
	}
}
