// Package fanout dispatches one claim to every configured provider
// concurrently. Failures and timeouts are isolated per provider: the join
// waits for all calls and keeps whatever partial results arrived, so the
// wall-clock cost is bounded by the slowest provider, not the sum.
package fanout

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/provider"
)

// Coordinator fans one claim out to a set of providers
type Coordinator struct {
	providers []provider.Provider
	timeout   time.Duration
	limiter   *Limiter
	verbose   bool
}

// NewCoordinator creates a coordinator. timeout bounds each individual
// provider call independently.
func NewCoordinator(providers []provider.Provider, timeout time.Duration, limiter *Limiter, verbose bool) *Coordinator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Coordinator{
		providers: providers,
		timeout:   timeout,
		limiter:   limiter,
		verbose:   verbose,
	}
}

// Configured returns the providers currently able to serve calls
func (c *Coordinator) Configured() []provider.Provider {
	var out []provider.Provider
	for _, p := range c.providers {
		if p.IsConfigured() {
			out = append(out, p)
		}
	}
	return out
}

// Verify queries every configured provider concurrently and returns the
// successful results, possibly none. Each slot is written by exactly one
// goroutine, so no locking is needed within a single fan-out.
func (c *Coordinator) Verify(ctx context.Context, claim string) []model.ProviderResult {
	configured := c.Configured()
	if len(configured) == 0 {
		return nil
	}

	slots := make([]*model.ProviderResult, len(configured))
	var wg sync.WaitGroup

	for i, p := range configured {
		wg.Add(1)
		go func(idx int, p provider.Provider) {
			defer wg.Done()

			result, err := c.callProvider(ctx, p, claim)
			if err != nil {
				if c.verbose {
					fmt.Fprintf(os.Stderr, "%s: %v\n", p.Name(), err)
				}
				return
			}
			slots[idx] = result
		}(i, p)
	}

	wg.Wait()

	var results []model.ProviderResult
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// callProvider runs one provider call under its own timeout. A panicking
// client must not take down the request, so panics become errors here.
func (c *Coordinator) callProvider(ctx context.Context, p provider.Provider, claim string) (result *model.ProviderResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(callCtx, p.Name()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	return p.VerifyClaim(callCtx, claim)
}
