// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds the allowed drift of the weight sum from 1.0.
// Weights come from config files where float literals rarely sum exactly.
const weightSumTolerance = 1e-9

// Weights control how much each sub-score contributes to the total match
// score. They must be non-negative and sum to 1.0.
type Weights struct {
	PriceMatch   float64 `json:"price_match"`
	Bedroom      float64 `json:"bedroom"`
	SchoolRating float64 `json:"school_rating"`
	Commute      float64 `json:"commute"`
	PropertyAge  float64 `json:"property_age"`
	Amenities    float64 `json:"amenities"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.PriceMatch + w.Bedroom + w.SchoolRating + w.Commute + w.PropertyAge + w.Amenities
}

// Config holds scoring engine configuration.
type Config struct {
	Weights Weights `json:"weights"`
}

// DefaultConfig returns the production weighting: price dominates, bedroom
// fit second, the rest split across livability signals.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			PriceMatch:   0.30,
			Bedroom:      0.20,
			SchoolRating: 0.15,
			Commute:      0.15,
			PropertyAge:  0.10,
			Amenities:    0.10,
		},
	}
}

// Validate checks that the weights form a proper convex combination.
func (c *Config) Validate() error {
	w := c.Weights

	named := []struct {
		name  string
		value float64
	}{
		{"price_match", w.PriceMatch},
		{"bedroom", w.Bedroom},
		{"school_rating", w.SchoolRating},
		{"commute", w.Commute},
		{"property_age", w.PropertyAge},
		{"amenities", w.Amenities},
	}
	for _, nw := range named {
		if nw.value < 0 {
			return fmt.Errorf("scoring weight %s is negative: %f", nw.name, nw.value)
		}
		if math.IsNaN(nw.value) || math.IsInf(nw.value, 0) {
			return fmt.Errorf("scoring weight %s is not finite: %f", nw.name, nw.value)
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("scoring weights sum to %f, want 1.0", sum)
	}
	return nil
}

// Clone returns an independent copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
