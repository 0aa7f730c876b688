package content

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips markup",
			input: "<p>The Earth is <b>flat</b>.</p>",
			want:  "The Earth is flat .",
		},
		{
			name:  "strips urls",
			input: "Read more at https://example.com/article today",
			want:  "Read more at today",
		},
		{
			name:  "strips emails",
			input: "Contact someone@example.com for details",
			want:  "Contact for details",
		},
		{
			name:  "collapses whitespace",
			input: "too   many\t\tspaces\n\nhere",
			want:  "too many spaces here",
		},
		{
			name:  "keeps punctuation",
			input: "Really? Yes, it's true!",
			want:  "Really? Yes, it's true!",
		},
		{
			name:  "drops emoji",
			input: "Shocking news\U0001F631 today",
			want:  "Shocking news today",
		},
		{
			name:  "keeps accented letters",
			input: "Die Erde ist größer als der Mond.",
			want:  "Die Erde ist größer als der Mond.",
		},
		{
			name:  "keeps non-latin scripts",
			input: "Земля круглая, это доказано наукой.",
			want:  "Земля круглая, это доказано наукой.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanText(tt.input)
			if got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	text := "The first sentence is here. The second sentence follows! Is this the third? Yes."
	sentences := splitSentences(text)

	// "Yes." is 4 characters and gets dropped
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "The first sentence is here." {
		t.Errorf("unexpected first sentence: %q", sentences[0])
	}
}

func TestSplitSentences_DropsShortSegments(t *testing.T) {
	text := "Ok. But this sentence is long enough to keep. No."
	sentences := splitSentences(text)

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(sentences), sentences)
	}
	if !strings.Contains(sentences[0], "long enough") {
		t.Errorf("kept the wrong sentence: %q", sentences[0])
	}
}

func TestSplitSentences_ShortInputFallback(t *testing.T) {
	// Every segment is 10 chars or less, but the text is non-empty: the
	// whole text must survive as the single sentence.
	text := "Cats fly."
	sentences := splitSentences(text)

	if len(sentences) != 1 {
		t.Fatalf("expected fallback single sentence, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != text {
		t.Errorf("expected %q, got %q", text, sentences[0])
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := splitSentences(""); len(got) != 0 {
		t.Errorf("expected no sentences for empty input, got %v", got)
	}
}

func TestExtractClaims_Triggers(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name     string
		sentence string
	}{
		{"percentage", "Unemployment rose by 15% last year according to nobody."},
		{"large number", "The country spent 3 billion dollars on the project."},
		{"attribution", "According to researchers, sleep matters."},
		{"definitive copula", "This is the best-documented case on record."},
		{"superlative", "It was the largest gathering ever held."},
		{"absolute quantifier", "Every expert rejected the proposal outright."},
		{"causation verb", "Smoking causes cancer in humans."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !p.matchesTrigger(tt.sentence) {
				t.Errorf("expected trigger match for %q", tt.sentence)
			}
		})
	}
}

func TestExtractClaims_OpinionExcluded(t *testing.T) {
	p := NewProcessor()

	result := p.Process("I think pizza is delicious", "", "", "")

	if len(result.Claims) != 0 {
		t.Errorf("expected no claims from an opinion, got %v", result.Claims)
	}
}

func TestExtractClaims_QuestionExcluded(t *testing.T) {
	p := NewProcessor()

	if p.isLikelyClaim("Did the economy really grow last year?") {
		t.Error("questions must not pass the inclusive heuristic")
	}
}

func TestExtractClaims_DefaultInclusion(t *testing.T) {
	p := NewProcessor()

	// No trigger, not a question, no opinion marker: included by default
	if !p.isLikelyClaim("The Earth spins slowly eastward") {
		t.Error("plain declarative sentences should default to claims")
	}
}

func TestProcess_ClaimsAreOrderedSubsetOfSentences(t *testing.T) {
	p := NewProcessor()

	text := "The ice caps melted by 40% since 1980. What do you think about that? " +
		"According to NASA, the trend continues. The ice caps melted by 40% since 1980."
	result := p.Process(text, "https://example.com", "twitter", "alice")

	// Claims preserve first-seen order and drop exact duplicates
	sentenceIndex := make(map[string]int)
	for i, s := range result.Sentences {
		if _, ok := sentenceIndex[s]; !ok {
			sentenceIndex[s] = i
		}
	}

	last := -1
	seen := make(map[string]bool)
	for _, c := range result.Claims {
		if seen[c] {
			t.Errorf("duplicate claim %q", c)
		}
		seen[c] = true

		idx, ok := sentenceIndex[c]
		if !ok {
			t.Errorf("claim %q is not one of the sentences", c)
			continue
		}
		if idx < last {
			t.Errorf("claim %q out of order", c)
		}
		last = idx
	}
}

func TestProcess_NonASCIIClaims(t *testing.T) {
	p := NewProcessor()

	text := "Die Erde ist größer als der Mond. Земля круглая, это доказано наукой."
	result := p.Process(text, "", "", "")

	if result.CleanedText != text {
		t.Errorf("cleaned = %q, want input preserved", result.CleanedText)
	}
	if len(result.Sentences) != 2 {
		t.Fatalf("sentences = %v, want 2", result.Sentences)
	}
	want := []string{
		"Die Erde ist größer als der Mond.",
		"Земля круглая, это доказано наукой.",
	}
	if !reflect.DeepEqual(result.Claims, want) {
		t.Errorf("claims = %v, want %v", result.Claims, want)
	}
}

func TestProcess_Metadata(t *testing.T) {
	p := NewProcessor()

	text := "The report states inflation fell. Prices dropped by 2% overall."
	result := p.Process(text, "https://example.com", "facebook", "bob")

	want := map[string]any{
		"url":             "https://example.com",
		"platform":        "facebook",
		"author":          "bob",
		"original_length": len(text),
		"cleaned_length":  len(result.CleanedText),
		"sentence_count":  len(result.Sentences),
		"claim_count":     len(result.Claims),
	}
	if !reflect.DeepEqual(result.Metadata, want) {
		t.Errorf("metadata = %v, want %v", result.Metadata, want)
	}
}

func TestRepresentativeClaim(t *testing.T) {
	p := NewProcessor()

	withClaims := p.Process("The ocean covers 71% of the planet. It is rather blue as well.", "", "", "")
	if got := withClaims.RepresentativeClaim(); got != withClaims.Claims[0] {
		t.Errorf("expected first claim, got %q", got)
	}

	noClaims := p.Process("I believe maybe?", "", "", "")
	if got := noClaims.RepresentativeClaim(); got != noClaims.CleanedText {
		t.Errorf("expected cleaned text fallback, got %q", got)
	}
}
