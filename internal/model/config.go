package model

import "time"

// Config is the full runtime configuration. Values resolve with the
// usual precedence: CLI flags over CONSTELLA_* environment variables
// over the config file over these defaults.
type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline" mapstructure:"pipeline"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Debounce    DebounceConfig    `yaml:"debounce" mapstructure:"debounce"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// PipelineConfig tunes the analysis pipeline itself.
type PipelineConfig struct {
	// MaxConcepts caps the ranked concept list.
	MaxConcepts int `yaml:"max_concepts" mapstructure:"max_concepts"`
	// MinRelevance drops concepts at or below this relevance, applied
	// once after ranking.
	MinRelevance float64 `yaml:"min_relevance" mapstructure:"min_relevance"`
	// Seed fixes the synthetic-node random source; 0 derives the seed
	// from the input text so identical inputs produce identical output.
	Seed int64 `yaml:"seed" mapstructure:"seed"`
}

// CacheConfig tunes the request-level result cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	MaxEntries      int           `yaml:"max_entries" mapstructure:"max_entries"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// DebounceConfig tunes input-stream coalescing.
type DebounceConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Quiet   time.Duration `yaml:"quiet" mapstructure:"quiet"`
}

// ConcurrencyConfig sets worker counts.
type ConcurrencyConfig struct {
	// AnalysisWorkers runs the independent analyzers of one input.
	AnalysisWorkers int `yaml:"analysis_workers" mapstructure:"analysis_workers"`
	// BatchWorkers processes batch inputs in parallel.
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// HTTPConfig applies to URL input sources only; the pipeline itself
// performs no I/O.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots     bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	HTTPProxy         string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty        bool `yaml:"pretty" mapstructure:"pretty"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig configures the optional narration sidecar. Empty Provider
// disables it.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MaxConcepts:  50,
			MinRelevance: 0.1,
			Seed:         0,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			MaxEntries:      100,
			CleanupInterval: time.Minute,
		},
		Debounce: DebounceConfig{
			Enabled: true,
			Quiet:   500 * time.Millisecond,
		},
		Concurrency: ConcurrencyConfig{
			AnalysisWorkers: 3,
			BatchWorkers:    4,
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Constella/0.1 (+https://github.com/tkondra/constella)",
			MaxBodyBytes:      2_000_000,
			RespectRobots:     true,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			Verbose:       false,
			Pretty:        true,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 400,
		},
	}
}
