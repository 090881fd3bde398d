// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package api

import (
	"net/http"

	"github.com/tomtom215/homematch/internal/models"
)

// Health returns the service health status.
//
// The endpoint always reports "healthy" when the server is able to answer;
// model_loaded distinguishes a predictor backed by the trained price model
// from the heuristic fallback. Operators use this flag to detect a missing
// or corrupt model file without grepping startup logs.
//
// @Summary Health check
// @Description Returns service health and whether the price model is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 405 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:      models.HealthStatusHealthy,
		ModelLoaded: h.pipeline.ModelUsed(),
	})
}
