// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 5001 {
		t.Errorf("expected port 5001, got %d", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Server.Timeout)
	}
	if cfg.Model.Path != "price_model.json" {
		t.Errorf("expected model path price_model.json, got %q", cfg.Model.Path)
	}
	if cfg.Recommend.PropertyCount != 20 {
		t.Errorf("expected property count 20, got %d", cfg.Recommend.PropertyCount)
	}
	if cfg.Recommend.TopN != 3 {
		t.Errorf("expected top n 3, got %d", cfg.Recommend.TopN)
	}
	if cfg.Recommend.DefaultBudget != 500000 {
		t.Errorf("expected default budget 500000, got %f", cfg.Recommend.DefaultBudget)
	}
	if cfg.Recommend.DefaultMinBedrooms != 2 {
		t.Errorf("expected default min bedrooms 2, got %d", cfg.Recommend.DefaultMinBedrooms)
	}

	sum := cfg.Scoring.Weights.PriceMatch + cfg.Scoring.Weights.Bedroom +
		cfg.Scoring.Weights.SchoolRating + cfg.Scoring.Weights.Commute +
		cfg.Scoring.Weights.PropertyAge + cfg.Scoring.Weights.Amenities
	if sum != 1.0 {
		t.Errorf("default scoring weights sum to %f, want 1.0", sum)
	}

	// The defaults must validate, or a bare startup would fail.
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: "SERVER_TIMEOUT",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "qa" },
			wantErr: "SERVER_ENVIRONMENT",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Scoring.Weights.Commute = -0.15 },
			wantErr: "SCORING_WEIGHT_COMMUTE",
		},
		{
			name: "weights do not sum to one",
			mutate: func(c *Config) {
				c.Scoring.Weights.PriceMatch = 0.5
			},
			wantErr: "sum to 1.0",
		},
		{
			name:    "zero property count",
			mutate:  func(c *Config) { c.Recommend.PropertyCount = 0 },
			wantErr: "RECOMMEND_PROPERTY_COUNT",
		},
		{
			name:    "max below default",
			mutate:  func(c *Config) { c.Recommend.MaxPropertyCount = 10 },
			wantErr: "RECOMMEND_MAX_PROPERTY_COUNT",
		},
		{
			name:    "zero top n",
			mutate:  func(c *Config) { c.Recommend.TopN = 0 },
			wantErr: "RECOMMEND_TOP_N",
		},
		{
			name:    "max top n below default",
			mutate:  func(c *Config) { c.Recommend.MaxTopN = 1 },
			wantErr: "RECOMMEND_MAX_TOP_N",
		},
		{
			name:    "non-positive budget",
			mutate:  func(c *Config) { c.Recommend.DefaultBudget = 0 },
			wantErr: "RECOMMEND_DEFAULT_BUDGET",
		},
		{
			name:    "zero min bedrooms",
			mutate:  func(c *Config) { c.Recommend.DefaultMinBedrooms = 0 },
			wantErr: "RECOMMEND_DEFAULT_MIN_BEDROOMS",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQS",
		},
		{
			name: "rate limit ignored when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.CORSOrigins = []string{"https://example.com"}

	clone := cfg.Clone()
	clone.Server.Port = 8080
	clone.Security.CORSOrigins[0] = "https://evil.example"

	if cfg.Server.Port != 5001 {
		t.Errorf("clone mutation leaked into original port: %d", cfg.Server.Port)
	}
	if cfg.Security.CORSOrigins[0] != "https://example.com" {
		t.Errorf("clone mutation leaked into original CORS origins: %v", cfg.Security.CORSOrigins)
	}
}

func TestIsProduction(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.IsProduction() {
		t.Error("development defaults should not report production")
	}

	cfg.Server.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("production environment not reported")
	}
}
