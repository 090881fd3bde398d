// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// Package scoring computes listing match scores and their human-readable
// reasoning.
//
// # Scoring Model
//
// The total score is a weighted sum of six sub-scores, each in [0,100]:
//
//   - Price match (0.30): perfect at or under budget, linear penalty above
//   - Bedroom fit (0.20): perfect at or over the minimum, proportional below
//   - School rating (0.15): linear over the 0-10 rating scale
//   - Commute (0.15): banded at 15/30/45 minutes
//   - Property age (0.10): banded at 5/15/30 years
//   - Amenities (0.10): fraction of pool/garage/garden present
//
// Weights are configurable but must sum to 1.0, which keeps the total in
// [0,100]. Totals are rounded to two decimals.
//
// # Reasoning
//
// Explain renders a fixed-order, semicolon-joined set of clauses (budget,
// bedrooms, school, commute, age, amenities, location). The strings are a
// frontend contract and are covered by golden tests.
//
// # Determinism
//
// Scoring is pure given a clock. The engine takes an injectable now func
// so age banding is reproducible in tests; production uses time.Now.
package scoring
