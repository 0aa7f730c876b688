// Package engine orchestrates the verification pipeline: cache check,
// content processing, strategy decision, local and cloud dispatch, result
// stamping and write-through caching.
package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/veridex/internal/aggregate"
	"github.com/ppiankov/veridex/internal/cache"
	"github.com/ppiankov/veridex/internal/content"
	"github.com/ppiankov/veridex/internal/fanout"
	"github.com/ppiankov/veridex/internal/knowledge"
	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/provider"
	"github.com/ppiankov/veridex/internal/strategy"
)

// Lookup is the local knowledge capability the engine consults for
// LOCAL_ONLY verification. A nil match means the claim is unknown locally.
type Lookup interface {
	Search(ctx context.Context, claim string) (*knowledge.Match, error)
}

// Request is one verification request
type Request struct {
	Text       string
	URL        string
	Platform   string
	Author     string
	Preference model.VerificationStrategy
}

// Engine runs the verification pipeline. Construct one per process and share
// it across request handlers; all state it holds is safe for concurrent use.
type Engine struct {
	processor   *content.Processor
	decisor     *strategy.Decisor
	coordinator *fanout.Coordinator
	aggregator  *aggregate.Aggregator
	lookup      Lookup
	providers   []provider.Provider
	results     *cache.ResultCache
	verbose     bool
}

// New creates an engine. results may be nil to disable caching.
func New(cfg *model.Config, lookup Lookup, providers []provider.Provider, results *cache.ResultCache) *Engine {
	cloudAvailable := !cfg.LocalOnly && provider.AnyConfigured(providers)

	limiter := fanout.NewLimiter(cfg.Providers.RequestsPerSecond, cfg.Providers.Burst)

	return &Engine{
		processor:   content.NewProcessor(),
		decisor:     strategy.NewDecisor(cloudAvailable),
		coordinator: fanout.NewCoordinator(providers, cfg.Providers.Timeout, limiter, cfg.Output.Verbose),
		aggregator:  aggregate.NewAggregator(),
		lookup:      lookup,
		providers:   providers,
		results:     results,
		verbose:     cfg.Output.Verbose,
	}
}

// Close releases provider connection handles
func (e *Engine) Close() {
	provider.CloseAll(e.providers)
}

// Verify runs the full pipeline for one request. It never fails: any
// unexpected error becomes a terminal UNCERTAIN result with the error text
// in metadata.
func (e *Engine) Verify(ctx context.Context, req Request) (result model.VerificationResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = model.VerificationResult{
				Verdict:        model.VerdictUncertain,
				Confidence:     0,
				Explanation:    fmt.Sprintf("Verification failed due to error: %v", r),
				Sources:        []string{},
				Evidence:       []string{},
				StrategyUsed:   model.StrategyLocalOnly,
				ProcessingTime: time.Since(start).Seconds(),
				Timestamp:      time.Now().UTC(),
				Metadata:       map[string]any{"error": fmt.Sprint(r)},
			}
		}
	}()

	// Cached answers come back with only the processing time refreshed;
	// they are never re-cached, so the TTL keeps running from the original
	// write.
	if e.results != nil {
		if cached, found := e.results.Get(req.Text); found {
			cached.ProcessingTime = time.Since(start).Seconds()
			return *cached
		}
	}

	processed := e.processor.Process(req.Text, req.URL, req.Platform, req.Author)

	strat := e.decisor.Decide(processed.Claims, len(processed.CleanedText), false, req.Preference)

	switch strat {
	case model.StrategyLocalOnly:
		result = e.verifyLocal(ctx, processed)
	case model.StrategyCloudOnly:
		result = e.verifyCloud(ctx, processed)
	default:
		result = e.verifyHybrid(ctx, processed)
	}

	result.StrategyUsed = strat
	result.ProcessingTime = time.Since(start).Seconds()

	// Write-through happens only after a complete fresh computation, so an
	// abandoned request can never leave a partial entry behind.
	if e.results != nil {
		if err := e.results.Set(req.Text, result); err != nil && e.verbose {
			fmt.Fprintf(os.Stderr, "cache write failed: %v\n", err)
		}
	}

	return result
}

// verifyLocal resolves the representative claim against the local knowledge
// lookup
func (e *Engine) verifyLocal(ctx context.Context, processed model.ProcessedContent) model.VerificationResult {
	if !processed.HasClaims() {
		return model.VerificationResult{
			Verdict:     model.VerdictUnverifiable,
			Confidence:  50,
			Explanation: "No factual claims detected in the content. This appears to be an opinion or subjective statement.",
			Sources:     []string{},
			Evidence:    []string{"No check-worthy claims identified"},
			Timestamp:   time.Now().UTC(),
			Metadata:    processed.Metadata,
		}
	}

	match, err := e.lookup.Search(ctx, processed.RepresentativeClaim())
	if err != nil && e.verbose {
		fmt.Fprintf(os.Stderr, "knowledge lookup failed: %v\n", err)
	}

	if match != nil {
		return model.VerificationResult{
			Verdict:     match.Verdict,
			Confidence:  match.Confidence,
			Explanation: match.Explanation,
			Sources:     match.Sources,
			Evidence:    match.Evidence,
			Timestamp:   time.Now().UTC(),
			Metadata:    processed.Metadata,
		}
	}

	return model.VerificationResult{
		Verdict:     model.VerdictUncertain,
		Confidence:  40,
		Explanation: "Local analysis completed. Cloud verification recommended for higher confidence.",
		Sources:     []string{"Local knowledge base"},
		Evidence:    []string{fmt.Sprintf("Identified %d claim(s) requiring fact-checking", len(processed.Claims))},
		Timestamp:   time.Now().UTC(),
		Metadata:    processed.Metadata,
	}
}

// verifyCloud fans the representative claim out to every configured provider
// and aggregates whatever comes back
func (e *Engine) verifyCloud(ctx context.Context, processed model.ProcessedContent) model.VerificationResult {
	if len(e.coordinator.Configured()) == 0 {
		return model.VerificationResult{
			Verdict:     model.VerdictUncertain,
			Confidence:  0,
			Explanation: "No external fact-check providers configured.",
			Sources:     []string{},
			Evidence:    []string{},
			Timestamp:   time.Now().UTC(),
			Metadata:    processed.Metadata,
		}
	}

	results := e.coordinator.Verify(ctx, processed.RepresentativeClaim())
	aggregated := e.aggregator.Aggregate(results)

	for k, v := range processed.Metadata {
		aggregated.Metadata[k] = v
	}

	return aggregated
}

// verifyHybrid runs the cheap local check first; a highly confident local
// answer skips the cloud entirely. Otherwise the cloud result replaces the
// local one rather than blending with it.
func (e *Engine) verifyHybrid(ctx context.Context, processed model.ProcessedContent) model.VerificationResult {
	local := e.verifyLocal(ctx, processed)

	if local.Confidence > 90 {
		return local
	}

	if len(e.coordinator.Configured()) > 0 {
		return e.verifyCloud(ctx, processed)
	}

	return local
}
