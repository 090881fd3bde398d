// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package api

import (
	"github.com/tomtom215/homematch/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_health.go: Health endpoint
//   - handlers_core.go: Recommendation and property listing endpoints
type Handler struct {
	pipeline *recommend.Pipeline
}

// NewHandler creates a new API handler with all required dependencies.
//
// The handler manages HTTP request processing for the recommendation API:
// health checks, recommendation requests, and property listings. All domain
// work is delegated to the pipeline, which owns the generator, scoring
// engine, and price predictor.
//
// Example:
//
//	handler := api.NewHandler(pipeline)
//	router := api.NewRouter(handler, middleware)
//	http.ListenAndServe(":5001", router.SetupChi())
func NewHandler(pipeline *recommend.Pipeline) *Handler {
	return &Handler{
		pipeline: pipeline,
	}
}
