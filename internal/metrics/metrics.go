// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Price prediction outcomes (model, heuristic, degraded fallback)
// - Model artifact loading
// - Listing generation and recommendation pipeline runs
// - Circuit breaker state

// Prediction sources for the price_predictions_total counter.
const (
	// PredictionSourceModel counts predictions served by the trained model.
	PredictionSourceModel = "model"
	// PredictionSourceHeuristic counts predictions served by the heuristic
	// predictor running as the configured predictor.
	PredictionSourceHeuristic = "heuristic"
	// PredictionSourceFallback counts predictions where the model path
	// failed and the heuristic served the call instead.
	PredictionSourceFallback = "fallback"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Price Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_predictions_total",
			Help: "Total number of price predictions by source",
		},
		[]string{"source"}, // "model", "heuristic", "fallback"
	)

	ModelLoadAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_load_attempts_total",
			Help: "Total number of model artifact decode attempts by strategy",
		},
		[]string{"strategy", "result"}, // result: "success", "failure"
	)

	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded",
			Help: "Whether a trained price model is active (1) or the heuristic is serving (0)",
		},
	)

	// Listing Generation Metrics
	PropertiesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "properties_generated_total",
			Help: "Total number of property listings generated",
		},
	)

	GenerationBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "property_generation_batch_size",
			Help:    "Number of listings generated per batch",
			Buckets: []float64{1, 5, 10, 20, 50, 100}, // Batch sizes are capped at 100
		},
	)

	// Recommendation Pipeline Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation pipeline runs in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}, // In-memory pipeline, sub-millisecond typical
		},
	)

	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation pipeline runs",
		},
	)

	RecommendationPropertiesEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_properties_evaluated_total",
			Help: "Total number of listings scored by the recommendation pipeline",
		},
	)

	RecommendationsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_returned_total",
			Help: "Total number of recommendations returned to clients",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPrediction records a single price prediction by source
func RecordPrediction(source string) {
	PredictionsTotal.WithLabelValues(source).Inc()
}

// RecordModelLoad records a model artifact decode attempt for one strategy
func RecordModelLoad(strategy string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	ModelLoadAttempts.WithLabelValues(strategy, result).Inc()
}

// SetModelLoaded publishes whether the trained model is serving predictions
func SetModelLoaded(loaded bool) {
	if loaded {
		ModelLoaded.Set(1)
	} else {
		ModelLoaded.Set(0)
	}
}

// RecordPropertiesGenerated records one generation batch
func RecordPropertiesGenerated(count int) {
	PropertiesGenerated.Add(float64(count))
	GenerationBatchSize.Observe(float64(count))
}

// RecordRecommendation records one recommendation pipeline run
func RecordRecommendation(duration time.Duration, evaluated, returned int) {
	RecommendationsTotal.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationPropertiesEvaluated.Add(float64(evaluated))
	RecommendationsReturned.Add(float64(returned))
}
