// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// Package property defines the listing domain model and the mock listing
// generator.
//
// # Generation
//
// Listings are drawn from fixed catalogs (zip codes, cities, streets,
// imagery) and bounded numeric ranges, then priced through the configured
// predictor. IDs are sequential per batch and images cycle by listing
// index, so position N always carries the same photo across batches.
//
// # Determinism
//
// The generator draws from an injectable Rand. Production uses a seeded,
// mutex-guarded math/rand source (seed 0 selects a time-based seed, the
// default); tests inject scripted draws to pin every field.
//
// # Thread Safety
//
// A Generator is shared across requests. The default draw source
// serializes access internally; injected sources must do the same.
package property
