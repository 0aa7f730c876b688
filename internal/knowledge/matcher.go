package knowledge

import "context"

// Matcher scores how closely a query resembles each known claim phrase.
// Both variants share this contract, so the heavier embedding backend can be
// absent without branching anywhere else.
type Matcher interface {
	// BestMatch returns the closest key and its similarity in [0,1].
	// An empty key means nothing scored above zero.
	BestMatch(ctx context.Context, query string, keys []string) (string, float64, error)
}
