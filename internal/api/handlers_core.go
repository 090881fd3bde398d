// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/homematch/internal/models"
)

// maxRequestBody caps request body reads at 1 MiB.
const maxRequestBody = 1 << 20

// Recommend generates scored property recommendations for a buyer.
//
// The request body carries buyer preferences plus optional generation counts.
// An empty or null body is rejected before JSON decoding so the client gets
// the same "No data provided" answer for a missing payload as for an
// explicitly empty one. An empty JSON object is valid and selects the
// configured defaults for every field.
//
// @Summary Generate property recommendations
// @Description Generates a fresh pool of listings, scores each against the buyer preferences, and returns the top matches sorted by match score
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Buyer preferences and optional generation counts"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 405 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		respondError(w, http.StatusBadRequest, "No data provided", nil)
		return
	}

	var req models.RecommendRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	if msg := validateRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	prefs := req.Preferences.Resolve()
	propertyCount, topN := req.Counts()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.pipeline.Recommend(ctx, prefs, propertyCount, topN)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.RecommendResponse{
		Success:                  true,
		Recommendations:          result.Recommendations,
		TotalPropertiesEvaluated: result.TotalEvaluated,
		ModelUsed:                result.ModelUsed,
	})
}

// Properties returns a freshly generated, unscored property pool.
//
// The optional count query parameter controls the pool size; zero or a
// malformed value falls back to the configured default, and oversized
// requests are clamped by the pipeline.
//
// @Summary List generated properties
// @Description Returns a randomized pool of property listings with predicted prices, without match scoring
// @Tags Properties
// @Produce json
// @Param count query int false "Number of properties to generate (default 20, max 100)"
// @Success 200 {object} models.PropertiesResponse
// @Failure 405 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /properties [get]
func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	count := getIntParam(r, "count", 0)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	properties, err := h.pipeline.Properties(ctx, count)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate properties", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.PropertiesResponse{
		Success:    true,
		Properties: properties,
		Count:      len(properties),
	})
}
