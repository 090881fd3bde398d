// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// Package recommend orchestrates the recommendation flow: generate an
// evaluation pool, score and explain every listing, rank, truncate.
//
// # Pipeline
//
//	pool    := generator.Generate(propertyCount)
//	scored  := score + explain each listing against resolved preferences
//	ranked  := stable sort by match score, descending
//	result  := ranked[:topN], total evaluated, model capability flag
//
// The stable sort means listings with equal scores keep their generation
// order, so a fixed generator seed yields fully reproducible responses.
//
// # Sizing
//
// Requested pool sizes and result counts resolve to configured defaults
// when unset and clamp to configured ceilings when explicit. topN is
// additionally bounded by the pool size: asking for 10 of 5 returns 5.
//
// # Capability Reporting
//
// ModelUsed reflects whether the trained-model path was active at startup.
// Per-call degradation inside the predictor does not flip it mid-batch;
// callers get a stable answer for the whole response.
package recommend
