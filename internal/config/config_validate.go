// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package config

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds the allowed drift of the scoring weight sum
// from 1.0. YAML float literals rarely sum exactly.
const weightSumTolerance = 1e-9

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateScoring(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}

	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("SERVER_ENVIRONMENT must be development, staging, or production, got %q", c.Server.Environment)
	}
}

// validateScoring validates the match scoring weights. The scoring engine
// validates again at construction; checking here surfaces a bad deployment
// at startup with the env var name in the message.
func (c *Config) validateScoring() error {
	w := c.Scoring.Weights

	named := []struct {
		name  string
		value float64
	}{
		{"SCORING_WEIGHT_PRICE_MATCH", w.PriceMatch},
		{"SCORING_WEIGHT_BEDROOM", w.Bedroom},
		{"SCORING_WEIGHT_SCHOOL_RATING", w.SchoolRating},
		{"SCORING_WEIGHT_COMMUTE", w.Commute},
		{"SCORING_WEIGHT_PROPERTY_AGE", w.PropertyAge},
		{"SCORING_WEIGHT_AMENITIES", w.Amenities},
	}
	sum := 0.0
	for _, nw := range named {
		if math.IsNaN(nw.value) || math.IsInf(nw.value, 0) {
			return fmt.Errorf("%s must be finite, got %f", nw.name, nw.value)
		}
		if nw.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", nw.name, nw.value)
		}
		sum += nw.value
	}

	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %f", sum)
	}
	return nil
}

// validateRecommend validates recommendation pipeline settings
func (c *Config) validateRecommend() error {
	r := c.Recommend

	if r.PropertyCount < 1 {
		return fmt.Errorf("RECOMMEND_PROPERTY_COUNT must be at least 1, got %d", r.PropertyCount)
	}
	if r.TopN < 1 {
		return fmt.Errorf("RECOMMEND_TOP_N must be at least 1, got %d", r.TopN)
	}
	if r.MaxPropertyCount < r.PropertyCount {
		return fmt.Errorf("RECOMMEND_MAX_PROPERTY_COUNT (%d) must be at least RECOMMEND_PROPERTY_COUNT (%d)", r.MaxPropertyCount, r.PropertyCount)
	}
	if r.MaxTopN < r.TopN {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N (%d) must be at least RECOMMEND_TOP_N (%d)", r.MaxTopN, r.TopN)
	}
	if r.DefaultBudget <= 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_BUDGET must be positive, got %f", r.DefaultBudget)
	}
	if r.DefaultMinBedrooms < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_MIN_BEDROOMS must be at least 1, got %d", r.DefaultMinBedrooms)
	}
	return nil
}

// validateSecurity validates CORS and rate limiting settings
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
