// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/models"
	"github.com/tomtom215/homematch/internal/predict"
	"github.com/tomtom215/homematch/internal/property"
	"github.com/tomtom215/homematch/internal/recommend"
	"github.com/tomtom215/homematch/internal/scoring"
)

// newTestHandler builds a handler backed by a deterministic heuristic pipeline.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	logger := zerolog.Nop()
	predictor := predict.NewHeuristic(42)
	generator := property.NewGenerator(predictor, 42, logger)
	engine := scoring.NewEngine(scoring.DefaultConfig(), logger)
	pipeline := recommend.NewPipeline(recommend.DefaultConfig(), generator, engine, predictor, logger)

	return NewHandler(pipeline)
}

// newTestRouter builds the full Chi router with rate limiting disabled so
// request-heavy tests do not trip the per-IP limiter.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitDisabled = true

	router := NewRouter(newTestHandler(t), NewChiMiddleware(cfg))
	return router.SetupChi()
}

func postRecommend(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)
	return rec
}

func decodeError(t *testing.T, body *bytes.Buffer) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

// =============================================================================
// Health Endpoint Tests
// =============================================================================

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp.Status != models.HealthStatusHealthy {
		t.Errorf("status = %q, want %q", resp.Status, models.HealthStatusHealthy)
	}

	// Heuristic predictor means no trained model is loaded
	if resp.ModelLoaded {
		t.Error("model_loaded = true, want false for heuristic predictor")
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}

	resp := decodeError(t, rec.Body)
	if resp.Success {
		t.Error("success = true, want false")
	}
}

// =============================================================================
// Recommend Endpoint Tests
// =============================================================================

func TestRecommendDefaults(t *testing.T) {
	h := newTestHandler(t)

	rec := postRecommend(t, h, `{"preferences":{"budget":450000,"min_bedrooms":3}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(resp.Recommendations) != 3 {
		t.Errorf("recommendations = %d, want 3", len(resp.Recommendations))
	}
	if resp.TotalPropertiesEvaluated != 20 {
		t.Errorf("total_properties_evaluated = %d, want 20", resp.TotalPropertiesEvaluated)
	}
	if resp.ModelUsed {
		t.Error("model_used = true, want false for heuristic predictor")
	}

	// Recommendations must be sorted by match score, best first
	for i := 1; i < len(resp.Recommendations); i++ {
		prev := resp.Recommendations[i-1].MatchScore
		curr := resp.Recommendations[i].MatchScore
		if prev < curr {
			t.Errorf("recommendations out of order: score[%d]=%v < score[%d]=%v", i-1, prev, i, curr)
		}
	}

	for i, r := range resp.Recommendations {
		if r.MatchScore < 0 || r.MatchScore > 100 {
			t.Errorf("recommendation %d score %v outside [0, 100]", i, r.MatchScore)
		}
		if r.Reasoning == "" {
			t.Errorf("recommendation %d has empty reasoning", i)
		}
	}
}

func TestRecommendCustomCounts(t *testing.T) {
	h := newTestHandler(t)

	rec := postRecommend(t, h, `{"preferences":{"budget":600000},"property_count":10,"num_recommendations":5}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.TotalPropertiesEvaluated != 10 {
		t.Errorf("total_properties_evaluated = %d, want 10", resp.TotalPropertiesEvaluated)
	}
	if len(resp.Recommendations) != 5 {
		t.Errorf("recommendations = %d, want 5", len(resp.Recommendations))
	}
}

func TestRecommendTopNLargerThanPool(t *testing.T) {
	h := newTestHandler(t)

	rec := postRecommend(t, h, `{"property_count":4,"num_recommendations":50}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Asking for more recommendations than generated returns the whole pool
	if len(resp.Recommendations) != 4 {
		t.Errorf("recommendations = %d, want 4", len(resp.Recommendations))
	}
}

func TestRecommendEmptyObjectUsesDefaults(t *testing.T) {
	h := newTestHandler(t)

	rec := postRecommend(t, h, `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Recommendations) != 3 {
		t.Errorf("recommendations = %d, want 3", len(resp.Recommendations))
	}
	if resp.TotalPropertiesEvaluated != 20 {
		t.Errorf("total_properties_evaluated = %d, want 20", resp.TotalPropertiesEvaluated)
	}
}

func TestRecommendBadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "empty body",
			body:      "",
			wantError: "No data provided",
		},
		{
			name:      "whitespace body",
			body:      "   \n\t ",
			wantError: "No data provided",
		},
		{
			name:      "null body",
			body:      "null",
			wantError: "No data provided",
		},
		{
			name:      "malformed JSON",
			body:      `{"preferences":`,
			wantError: "Invalid JSON body",
		},
		{
			name:      "JSON array",
			body:      `[1,2,3]`,
			wantError: "Invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := postRecommend(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
			}

			resp := decodeError(t, rec.Body)
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestRecommendValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "zero budget",
			body: `{"preferences":{"budget":0}}`,
		},
		{
			name: "negative budget",
			body: `{"preferences":{"budget":-100}}`,
		},
		{
			name: "zero min_bedrooms",
			body: `{"preferences":{"min_bedrooms":0}}`,
		},
		{
			name: "zero property_count",
			body: `{"property_count":0}`,
		},
		{
			name: "negative num_recommendations",
			body: `{"num_recommendations":-1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := postRecommend(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
			}

			resp := decodeError(t, rec.Body)
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error == "" {
				t.Error("error message is empty, want validation detail")
			}
		})
	}
}

func TestRecommendMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recommend", nil)
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// =============================================================================
// Properties Endpoint Tests
// =============================================================================

func TestProperties(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{
			name:      "default count",
			query:     "",
			wantCount: 20,
		},
		{
			name:      "explicit count",
			query:     "?count=5",
			wantCount: 5,
		},
		{
			name:      "zero falls back to default",
			query:     "?count=0",
			wantCount: 20,
		},
		{
			name:      "malformed falls back to default",
			query:     "?count=abc",
			wantCount: 20,
		},
		{
			name:      "oversized clamped to ceiling",
			query:     "?count=1000",
			wantCount: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/api/properties"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Properties(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
			}

			var resp models.PropertiesResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !resp.Success {
				t.Error("success = false, want true")
			}
			if resp.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", resp.Count, tt.wantCount)
			}
			if len(resp.Properties) != tt.wantCount {
				t.Errorf("properties = %d, want %d", len(resp.Properties), tt.wantCount)
			}
		})
	}
}

func TestPropertiesHavePredictedPrices(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/properties?count=10", nil)
	rec := httptest.NewRecorder()
	h.Properties(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp models.PropertiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	for i, p := range resp.Properties {
		if p.PredictedPrice <= 0 {
			t.Errorf("property %d predicted_price = %v, want > 0", i, p.PredictedPrice)
		}
		if p.ID == 0 {
			t.Errorf("property %d has zero id, want 1-based id", i)
		}
	}
}

func TestPropertiesMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/properties", nil)
	rec := httptest.NewRecorder()
	h.Properties(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// =============================================================================
// Router Integration Tests
// =============================================================================

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp.Status != models.HealthStatusHealthy {
		t.Errorf("status = %q, want %q", resp.Status, models.HealthStatusHealthy)
	}

	// Security headers are applied to API routes
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want %q", got, "nosniff")
	}
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestRouterRecommendEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"preferences":{"budget":500000,"min_bedrooms":2}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(resp.Recommendations) == 0 {
		t.Error("recommendations empty, want at least one")
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain exposition format", rec.Header().Get("Content-Type"))
	}
}

func TestRouterUnknownPathReturnsJSON404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	resp := decodeError(t, rec.Body)
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error != "Not found" {
		t.Errorf("error = %q, want %q", resp.Error, "Not found")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/recommend", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}
