package content

import (
	"regexp"
	"strings"

	"github.com/ppiankov/veridex/internal/model"
	"golang.org/x/net/html"
)

// Processor cleans raw text and extracts candidate factual claims
type Processor struct {
	triggers       []*regexp.Regexp
	opinionMarkers []string
}

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	charPattern       = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:'"-]`)
)

// NewProcessor creates a new content processor
func NewProcessor() *Processor {
	return &Processor{
		triggers: []*regexp.Regexp{
			regexp.MustCompile(`\d+%`),                                                    // percentages
			regexp.MustCompile(`(?i)\d+\s+(billion|million|thousand)`),                    // large numbers
			regexp.MustCompile(`(?i)(according to|study shows|research found|report states)`),
			regexp.MustCompile(`(?i)\b(is|are|was|were)\s+(the|a)\s+`),                    // definitive statements
			regexp.MustCompile(`(?i)\b(first|largest|biggest|most|least)\b`),              // superlatives
			regexp.MustCompile(`(?i)\b(every|all|no|none)\b`),                             // absolutes
			regexp.MustCompile(`(?i)\b(causes?|caused|leads? to|results? in|contains?|prevents?)\b`),
		},
		opinionMarkers: []string{
			"i think", "i believe", "in my opinion", "i feel", "seems like", "maybe",
		},
	}
}

// Process cleans raw text, splits it into sentences and extracts claims
func (p *Processor) Process(text, url, platform, author string) model.ProcessedContent {
	cleaned := cleanText(text)
	sentences := splitSentences(cleaned)
	claims := p.extractClaims(sentences)

	metadata := map[string]any{
		"url":             url,
		"platform":        platform,
		"author":          author,
		"original_length": len(text),
		"cleaned_length":  len(cleaned),
		"sentence_count":  len(sentences),
		"claim_count":     len(claims),
	}

	return model.ProcessedContent{
		Text:        text,
		CleanedText: cleaned,
		Sentences:   sentences,
		Claims:      claims,
		Metadata:    metadata,
	}
}

// cleanText strips markup, URLs and email-like tokens, collapses whitespace
// and drops characters outside the punctuation/word whitelist
func cleanText(text string) string {
	text = stripMarkup(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = charPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// stripMarkup extracts visible text, skipping script/style subtrees.
// Plain text passes through unchanged.
func stripMarkup(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String()
}

// splitSentences splits cleaned text on sentence-terminal punctuation followed
// by whitespace. Segments of 10 characters or less are dropped, except when
// that would eliminate everything: then the whole cleaned text becomes the
// single sentence so short valid inputs keep their content.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if len(s) > 10 {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				flush()
			}
		}
	}
	flush()

	if len(sentences) == 0 && text != "" {
		sentences = append(sentences, text)
	}

	return sentences
}

// extractClaims returns the sentences that qualify as candidate claims,
// deduplicated by exact text in first-seen order
func (p *Processor) extractClaims(sentences []string) []string {
	var claims []string
	seen := make(map[string]bool)

	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			claims = append(claims, s)
		}
	}

	for _, sentence := range sentences {
		if p.matchesTrigger(sentence) || p.isLikelyClaim(sentence) {
			add(sentence)
		}
	}

	return claims
}

func (p *Processor) matchesTrigger(sentence string) bool {
	for _, trigger := range p.triggers {
		if trigger.MatchString(sentence) {
			return true
		}
	}
	return false
}

// isLikelyClaim is the inclusive fallback: anything that is not a question,
// has at least 3 words and carries no first-person opinion marker is treated
// as a claim. Over-flagging beats silently dropping check-worthy text.
func (p *Processor) isLikelyClaim(sentence string) bool {
	if strings.HasSuffix(strings.TrimSpace(sentence), "?") {
		return false
	}
	if len(strings.Fields(sentence)) < 3 {
		return false
	}
	lower := strings.ToLower(sentence)
	for _, marker := range p.opinionMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
