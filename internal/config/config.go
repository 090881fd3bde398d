// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package config

import (
	"time"
)

// Config holds all application configuration, loaded from defaults, an
// optional YAML file, and environment variables (highest priority).
// See LoadWithKoanf for the loading order.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Model     ModelConfig     `koanf:"model"`
	Generator GeneratorConfig `koanf:"generator"`
	Scoring   ScoringConfig   `koanf:"scoring"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - SERVER_HOST: Bind address (default: 0.0.0.0)
//   - SERVER_PORT: Listen port (default: 5001)
//   - SERVER_TIMEOUT: Read/write timeout (default: 30s)
//   - SERVER_ENVIRONMENT: development, staging, production (default: development)
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// ModelConfig holds price model artifact settings.
//
// The service runs without a model: a missing artifact selects the
// deterministic pricing heuristic, and /api/health reports
// model_loaded=false so operators can tell the difference.
//
// Environment Variables:
//   - MODEL_PATH: Path to the trained model artifact (default: price_model.json)
type ModelConfig struct {
	// Path is where the model artifact is looked up at startup.
	// Supported formats: current JSON schema, legacy flat-array JSON,
	// and the YAML variant produced by older training jobs.
	Path string `koanf:"path"`
}

// GeneratorConfig holds property generation settings.
//
// The value ranges for generated listings (bedrooms, square footage,
// school ratings, city/state catalogs) are fixed constants in the property
// package; only the random seed is operator-tunable, for reproducible
// batches in demos and tests.
//
// Environment Variables:
//   - GENERATOR_SEED: Random seed; 0 seeds from the clock (default: 0)
type GeneratorConfig struct {
	// Seed seeds the generator's random source. Zero means time-based.
	Seed int64 `koanf:"seed"`
}

// ScoringWeights holds the weight of each match sub-score. Weights must be
// non-negative and sum to 1.0; the scoring engine validates this again at
// construction.
//
// Environment Variables:
//   - SCORING_WEIGHT_PRICE_MATCH (default: 0.30)
//   - SCORING_WEIGHT_BEDROOM (default: 0.20)
//   - SCORING_WEIGHT_SCHOOL_RATING (default: 0.15)
//   - SCORING_WEIGHT_COMMUTE (default: 0.15)
//   - SCORING_WEIGHT_PROPERTY_AGE (default: 0.10)
//   - SCORING_WEIGHT_AMENITIES (default: 0.10)
type ScoringWeights struct {
	PriceMatch   float64 `koanf:"price_match"`
	Bedroom      float64 `koanf:"bedroom"`
	SchoolRating float64 `koanf:"school_rating"`
	Commute      float64 `koanf:"commute"`
	PropertyAge  float64 `koanf:"property_age"`
	Amenities    float64 `koanf:"amenities"`
}

// ScoringConfig holds match scoring settings.
type ScoringConfig struct {
	Weights ScoringWeights `koanf:"weights"`
}

// RecommendConfig holds recommendation pipeline settings.
//
// Defaults apply when a request omits a value; maxima clamp explicit
// request values so an untrusted count cannot pick the pool size unchecked.
//
// Environment Variables:
//   - RECOMMEND_PROPERTY_COUNT: Default evaluation pool size (default: 20)
//   - RECOMMEND_TOP_N: Default number of recommendations (default: 3)
//   - RECOMMEND_MAX_PROPERTY_COUNT: Pool size ceiling (default: 100)
//   - RECOMMEND_MAX_TOP_N: Recommendation count ceiling (default: 50)
//   - RECOMMEND_DEFAULT_BUDGET: Budget when preferences omit one (default: 500000)
//   - RECOMMEND_DEFAULT_MIN_BEDROOMS: Bedroom minimum when omitted (default: 2)
type RecommendConfig struct {
	PropertyCount      int     `koanf:"property_count"`
	TopN               int     `koanf:"top_n"`
	MaxPropertyCount   int     `koanf:"max_property_count"`
	MaxTopN            int     `koanf:"max_top_n"`
	DefaultBudget      float64 `koanf:"default_budget"`
	DefaultMinBedrooms int     `koanf:"default_min_bedrooms"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: empty - same-origin only)
//   - RATE_LIMIT_REQS: Requests allowed per window (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - RATE_LIMIT_DISABLED: Disable rate limiting entirely (default: false)
type SecurityConfig struct {
	// CORSOrigins lists allowed cross-origin callers. Empty means no
	// cross-origin access; "*" must be set deliberately.
	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5001,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Model: ModelConfig{
			Path: "price_model.json",
		},
		Generator: GeneratorConfig{
			Seed: 0, // time-seeded
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				PriceMatch:   0.30,
				Bedroom:      0.20,
				SchoolRating: 0.15,
				Commute:      0.15,
				PropertyAge:  0.10,
				Amenities:    0.10,
			},
		},
		Recommend: RecommendConfig{
			PropertyCount:      20,
			TopN:               3,
			MaxPropertyCount:   100,
			MaxTopN:            50,
			DefaultBudget:      500000,
			DefaultMinBedrooms: 2,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{}, // Empty by default - requires explicit configuration
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads configuration from environment variables and optional config file.
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Clone returns a deep copy of the configuration. Callers that mutate
// config for a subsystem should clone first so the shared instance stays
// untouched.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Security.CORSOrigins = append([]string(nil), c.Security.CORSOrigins...)
	return &clone
}

// IsProduction reports whether the server runs in production mode.
// Production mode enables HSTS headers and is the setting deployment
// checklists should verify.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
