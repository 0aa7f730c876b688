package model

// ProcessedContent is the output of content preprocessing.
// Claims are an order-preserving, deduplicated subset of Sentences.
type ProcessedContent struct {
	Text        string         `json:"text"`
	CleanedText string         `json:"cleaned_text"`
	Sentences   []string       `json:"sentences"`
	Claims      []string       `json:"claims"`
	Metadata    map[string]any `json:"metadata"`
}

// HasClaims reports whether any check-worthy claims were extracted
func (c ProcessedContent) HasClaims() bool {
	return len(c.Claims) > 0
}

// RepresentativeClaim returns the claim submitted to verification: the first
// extracted claim, or the whole cleaned text when none were found.
func (c ProcessedContent) RepresentativeClaim() string {
	if len(c.Claims) > 0 {
		return c.Claims[0]
	}
	return c.CleanedText
}
