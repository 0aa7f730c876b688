package model

import "time"

// Config holds the full service configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Output    OutputConfig    `yaml:"output"`

	// LocalOnly disables all external provider calls regardless of keys
	LocalOnly bool `yaml:"local_only"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ProvidersConfig configures external fact-check providers.
// A provider with an empty key is treated as not configured.
type ProvidersConfig struct {
	Google      GoogleConfig      `yaml:"google"`
	ClaimBuster ClaimBusterConfig `yaml:"claimbuster"`
	Factiverse  FactiverseConfig  `yaml:"factiverse"`
	OpenAI      OpenAIConfig      `yaml:"openai"`

	// Timeout bounds each individual provider call
	Timeout time.Duration `yaml:"timeout"`

	// RequestsPerSecond / Burst rate-limit calls per provider
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type GoogleConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type ClaimBusterConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type FactiverseConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// CacheConfig configures the result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	TTL       time.Duration `yaml:"ttl"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	MaxSizeMB int           `yaml:"max_size_mb"`
}

// KnowledgeConfig configures the local knowledge lookup
type KnowledgeConfig struct {
	// Matcher selects the similarity backend: "lexical" or "embedding"
	Matcher        string  `yaml:"matcher"`
	Threshold      float64 `yaml:"threshold"`
	EmbeddingModel string  `yaml:"embedding_model"`
}

// OutputConfig controls diagnostics
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8420",
		},
		Providers: ProvidersConfig{
			Timeout:           15 * time.Second,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.veridex/cache at startup
			TTL:       24 * time.Hour,
			MemoryTTL: 1 * time.Hour,
			MaxSizeMB: 100,
		},
		Knowledge: KnowledgeConfig{
			Matcher:        "lexical",
			Threshold:      0.8,
			EmbeddingModel: "text-embedding-3-small",
		},
		Output: OutputConfig{},
	}
}
