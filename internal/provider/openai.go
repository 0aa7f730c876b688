package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ppiankov/veridex/internal/model"
)

const openAISystemPrompt = `You are a careful fact-checking assistant. Rate the factual accuracy of the claim you are given.

Respond with a single JSON object and nothing else:
{"rating": one of TRUE, MOSTLY_TRUE, MIXED, MOSTLY_FALSE, FALSE, UNVERIFIABLE, UNCERTAIN,
 "confidence": number between 0 and 100,
 "explanation": one or two sentences}

Use UNVERIFIABLE for opinions or claims that cannot be checked, and UNCERTAIN when the evidence is genuinely unclear. Never guess.`

// OpenAI rates claims with a language model. Unlike the dedicated fact-check
// services it has no citation database, so it never reports named sources
// beyond itself.
type OpenAI struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
}

type openAIVerdict struct {
	Rating      string  `json:"rating"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// NewOpenAI creates an OpenAI-backed provider
func NewOpenAI(cfg model.OpenAIConfig, timeout time.Duration) *OpenAI {
	p := &OpenAI{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: timeout,
	}
	if p.model == "" {
		p.model = openai.GPT4oMini
	}
	if p.timeout <= 0 {
		p.timeout = 15 * time.Second
	}
	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		p.client = openai.NewClientWithConfig(clientConfig)
	}
	return p
}

func (p *OpenAI) Name() string { return "OpenAI" }

func (p *OpenAI) IsConfigured() bool { return p.client != nil }

func (p *OpenAI) Close() {}

// VerifyClaim asks the model for a structured rating of the claim
func (p *OpenAI) VerifyClaim(ctx context.Context, claim string) (*model.ProviderResult, error) {
	if !p.IsConfigured() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: claim},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	verdict, err := parseOpenAIVerdict(content)
	if err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}

	rating := NormalizeRating(verdict.Rating)
	confidence := verdict.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	now := time.Now()
	return &model.ProviderResult{
		Claim:      claim,
		Rating:     rating,
		Confidence: confidence,
		Sources: []model.Source{{
			Name:   "OpenAI " + p.model,
			Date:   &now,
			Rating: rating,
		}},
		Explanation: verdict.Explanation,
		Provider:    p.Name(),
		Raw:         map[string]any{"model": resp.Model, "content": content},
	}, nil
}

// parseOpenAIVerdict tolerates responses wrapped in markdown code fences
func parseOpenAIVerdict(content string) (*openAIVerdict, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var v openAIVerdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, err
	}
	if v.Rating == "" {
		return nil, fmt.Errorf("missing rating in %q", content)
	}
	return &v, nil
}
