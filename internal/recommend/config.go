// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package recommend

import (
	"fmt"
)

// Default and ceiling values for batch sizing. The ceilings bound per-request
// work: generation and scoring are O(count), so untrusted count inputs must
// not pick the pool size unchecked.
const (
	defaultPropertyCount = 20
	defaultTopN          = 3
	maxPropertyCount     = 100
	maxTopN              = 50

	defaultBudget      = 500000
	defaultMinBedrooms = 2
)

// Config holds pipeline defaults and ceilings. Zero-valued request inputs
// resolve to the defaults; explicit inputs clamp to the maxima.
type Config struct {
	// PropertyCount is the evaluation pool size when a request does not
	// specify one.
	PropertyCount int `json:"property_count"`

	// TopN is the number of recommendations returned when a request does
	// not specify one.
	TopN int `json:"top_n"`

	// MaxPropertyCount caps the evaluation pool size per request.
	MaxPropertyCount int `json:"max_property_count"`

	// MaxTopN caps the number of recommendations per request.
	MaxTopN int `json:"max_top_n"`

	// DefaultBudget is applied when preferences omit a budget.
	DefaultBudget float64 `json:"default_budget"`

	// DefaultMinBedrooms is applied when preferences omit a minimum.
	DefaultMinBedrooms int `json:"default_min_bedrooms"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		PropertyCount:      defaultPropertyCount,
		TopN:               defaultTopN,
		MaxPropertyCount:   maxPropertyCount,
		MaxTopN:            maxTopN,
		DefaultBudget:      defaultBudget,
		DefaultMinBedrooms: defaultMinBedrooms,
	}
}

// Validate checks internal consistency.
func (c *Config) Validate() error {
	if c.PropertyCount < 1 {
		return fmt.Errorf("property_count must be at least 1, got %d", c.PropertyCount)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.MaxPropertyCount < c.PropertyCount {
		return fmt.Errorf("max_property_count (%d) must be at least property_count (%d)", c.MaxPropertyCount, c.PropertyCount)
	}
	if c.MaxTopN < c.TopN {
		return fmt.Errorf("max_top_n (%d) must be at least top_n (%d)", c.MaxTopN, c.TopN)
	}
	if c.DefaultBudget <= 0 {
		return fmt.Errorf("default_budget must be positive, got %f", c.DefaultBudget)
	}
	if c.DefaultMinBedrooms < 1 {
		return fmt.Errorf("default_min_bedrooms must be at least 1, got %d", c.DefaultMinBedrooms)
	}
	return nil
}

// Clone returns an independent copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
