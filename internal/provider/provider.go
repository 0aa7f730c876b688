// Package provider holds the external fact-check service clients. Every
// failure at this boundary is downgraded to "no result": callers never see a
// provider error abort a request.
package provider

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

// Provider is a single external fact-checking service
type Provider interface {
	// Name returns the provider identifier used in results and metadata
	Name() string

	// IsConfigured reports whether the provider has the credentials it needs
	IsConfigured() bool

	// VerifyClaim checks one claim. A nil result with nil error means the
	// provider has no opinion, not that the call failed.
	VerifyClaim(ctx context.Context, claim string) (*model.ProviderResult, error)

	// Close releases the provider's connection handle
	Close()
}

// lazyClient is the reusable HTTP handle shared across requests: initialized
// on first use, released on Close. Safe for concurrent use.
type lazyClient struct {
	once    sync.Once
	timeout time.Duration
	client  *http.Client
}

func newLazyClient(timeout time.Duration) *lazyClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &lazyClient{timeout: timeout}
}

func (l *lazyClient) get() *http.Client {
	l.once.Do(func() {
		l.client = &http.Client{Timeout: l.timeout}
	})
	return l.client
}

func (l *lazyClient) close() {
	if l.client != nil {
		l.client.CloseIdleConnections()
	}
}

// FromConfig builds the provider set from configuration. Unconfigured
// providers are still returned; the fan-out coordinator filters on
// IsConfigured so availability can change without rewiring.
func FromConfig(cfg model.ProvidersConfig) []Provider {
	return []Provider{
		NewGoogleFactCheck(cfg.Google, cfg.Timeout),
		NewClaimBuster(cfg.ClaimBuster, cfg.Timeout),
		NewFactiverse(cfg.Factiverse, cfg.Timeout),
		NewOpenAI(cfg.OpenAI, cfg.Timeout),
	}
}

// AnyConfigured reports whether at least one provider is usable
func AnyConfigured(providers []Provider) bool {
	for _, p := range providers {
		if p.IsConfigured() {
			return true
		}
	}
	return false
}

// CloseAll releases every provider's connection handle
func CloseAll(providers []Provider) {
	for _, p := range providers {
		p.Close()
	}
}
