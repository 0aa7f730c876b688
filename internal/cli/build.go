package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ppiankov/veridex/internal/cache"
	"github.com/ppiankov/veridex/internal/engine"
	"github.com/ppiankov/veridex/internal/knowledge"
	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/provider"
)

// loadConfig builds the effective configuration: defaults, then config file
// values, then well-known API key environment variables.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if viper.IsSet("local_only") {
		cfg.LocalOnly = viper.GetBool("local_only")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetDuration("providers.timeout"); v > 0 {
		cfg.Providers.Timeout = v
	}
	if v := viper.GetString("knowledge.matcher"); v != "" {
		cfg.Knowledge.Matcher = v
	}
	if v := viper.GetFloat64("knowledge.threshold"); v > 0 {
		cfg.Knowledge.Threshold = v
	}

	cfg.Providers.Google.APIKey = firstNonEmpty(os.Getenv("GOOGLE_FACTCHECK_API_KEY"), viper.GetString("providers.google.api_key"))
	cfg.Providers.ClaimBuster.APIKey = firstNonEmpty(os.Getenv("CLAIMBUSTER_API_KEY"), viper.GetString("providers.claimbuster.api_key"))
	cfg.Providers.Factiverse.APIKey = firstNonEmpty(os.Getenv("FACTIVERSE_API_KEY"), viper.GetString("providers.factiverse.api_key"))
	cfg.Providers.OpenAI.APIKey = firstNonEmpty(os.Getenv("OPENAI_API_KEY"), viper.GetString("providers.openai.api_key"))
	if v := viper.GetString("providers.openai.model"); v != "" {
		cfg.Providers.OpenAI.Model = v
	}

	cfg.Output.Verbose = verbose

	return cfg
}

// buildEngine constructs the per-process context: providers, knowledge
// verifier, result cache and the engine around them.
func buildEngine(cfg *model.Config) (*engine.Engine, *cache.ResultCache, []provider.Provider, error) {
	providers := provider.FromConfig(cfg.Providers)

	lookup := knowledge.NewVerifierFromConfig(cfg.Knowledge, cfg.Providers.OpenAI.APIKey)

	var results *cache.ResultCache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = filepath.Join(home, ".veridex", "cache")
		}
		store := cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.TTL)
		results = cache.NewResultCache(store, cfg.Cache.TTL)
	}

	eng := engine.New(cfg, lookup, providers, results)
	return eng, results, providers, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
