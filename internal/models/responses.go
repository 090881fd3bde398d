// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package models

import (
	"github.com/tomtom215/homematch/internal/property"
)

// HealthStatusHealthy is the status reported by the health endpoint. The
// service has no hard external dependencies, so a responding process is a
// healthy one; model availability is reported separately.
const HealthStatusHealthy = "healthy"

// HealthResponse is the body of GET /api/health.
//
// Example response:
//
//	{
//	  "status": "healthy",
//	  "model_loaded": true
//	}
//
// The endpoint responds even when no price model is loaded; clients use
// model_loaded to distinguish trained-model predictions from heuristic ones.
type HealthResponse struct {
	// Status is always "healthy" when the process can respond.
	Status string `json:"status"`

	// ModelLoaded reports whether a trained price model is active.
	ModelLoaded bool `json:"model_loaded"`
}

// RecommendResponse is the body of a successful POST /api/recommend.
//
// Example response:
//
//	{
//	  "success": true,
//	  "recommendations": [
//	    {
//	      "id": 1,
//	      "address": "1247 Oak Street",
//	      "predicted_price": 412000.0,
//	      "match_score": 87.5,
//	      "reasoning": "Within budget at $412,000; Has 3 bedrooms (needed 2+)",
//	      ...
//	    }
//	  ],
//	  "total_properties_evaluated": 20,
//	  "model_used": false
//	}
//
// Recommendations are sorted by descending match score; equal scores keep
// generation order.
type RecommendResponse struct {
	// Success is true for every 2xx response.
	Success bool `json:"success"`

	// Recommendations are the top listings with score and reasoning.
	Recommendations []property.ScoredProperty `json:"recommendations"`

	// TotalPropertiesEvaluated is the size of the evaluation pool, which
	// can exceed the number of recommendations returned.
	TotalPropertiesEvaluated int `json:"total_properties_evaluated"`

	// ModelUsed reports whether predictions came from the trained model.
	ModelUsed bool `json:"model_used"`
}

// PropertiesResponse is the body of a successful GET /api/properties.
// Listings are unscored; the endpoint exists for inspection and testing.
//
// Example response:
//
//	{
//	  "success": true,
//	  "properties": [
//	    {"id": 1, "address": "1247 Oak Street", "bedrooms": 3, ...}
//	  ],
//	  "count": 20
//	}
type PropertiesResponse struct {
	// Success is true for every 2xx response.
	Success bool `json:"success"`

	// Properties is the generated listing batch.
	Properties []property.Property `json:"properties"`

	// Count is len(Properties), duplicated for client convenience.
	Count int `json:"count"`
}

// ErrorResponse is the body of every non-2xx API response.
//
// Example response:
//
//	{
//	  "success": false,
//	  "error": "No data provided"
//	}
type ErrorResponse struct {
	// Success is false for every error response.
	Success bool `json:"success"`

	// Error is a human-readable description of what went wrong.
	Error string `json:"error"`
}
