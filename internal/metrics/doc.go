// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring API performance, prediction outcomes,
and recommendation pipeline behavior.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Price prediction outcomes by source (model, heuristic, fallback)
  - Model artifact load attempts by decode strategy
  - Listing generation volume and batch sizes
  - Recommendation pipeline duration and output counts
  - Circuit breaker state transitions

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5001/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
    Buckets: .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Prediction Metrics:
  - price_predictions_total: Price predictions served (counter)
    Labels: source
    Values: model, heuristic, fallback
  - model_load_attempts_total: Artifact decode attempts (counter)
    Labels: strategy (json, legacy-json, yaml), result (success, failure)
  - model_loaded: Whether the trained model is active (gauge)
    Values: 0=heuristic serving, 1=model serving

Generation Metrics:
  - properties_generated_total: Listings generated (counter)
  - property_generation_batch_size: Listings per batch (histogram)
    Buckets: 1, 5, 10, 20, 50, 100

Recommendation Metrics:
  - recommendations_total: Pipeline runs (counter)
  - recommendation_duration_seconds: Pipeline run duration (histogram)
  - recommendation_properties_evaluated_total: Listings scored (counter)
  - recommendations_returned_total: Recommendations returned (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Consecutive failures (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Application Metrics:
  - app_info: Version information (gauge, always 1)
    Labels: version, go_version
  - app_uptime_seconds: Application uptime (gauge)

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/tomtom215/homematch/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    // Register metrics endpoint
	    http.Handle("/metrics", promhttp.Handler())

	    // Record metrics
	    metrics.RecordAPIRequest("GET", "/api/properties", "200", 23*time.Millisecond)
	    metrics.RecordPrediction(metrics.PredictionSourceHeuristic)
	    metrics.RecordRecommendation(450*time.Microsecond, 20, 3)
	}

Recording API metrics with middleware:

	func Prometheus(next http.Handler) http.Handler {
	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	        start := time.Now()
	        metrics.TrackActiveRequest(true)
	        defer metrics.TrackActiveRequest(false)

	        // Wrap ResponseWriter to capture status code
	        rw := &statusResponseWriter{ResponseWriter: w, statusCode: 200}

	        next.ServeHTTP(rw, r)

	        metrics.RecordAPIRequest(r.Method, r.URL.Path,
	            strconv.Itoa(rw.statusCode), time.Since(start))
	    })
	}

# Prometheus Configuration

Example prometheus.yml configuration:

	scrape_configs:
	  - job_name: 'homematch'
	    static_configs:
	      - targets: ['localhost:5001']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

# Grafana Dashboards

Example PromQL queries:

	# API request rate
	rate(api_requests_total[5m])

	# API p95 latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Share of predictions served by the trained model
	sum(rate(price_predictions_total{source="model"}[5m]))
	/
	sum(rate(price_predictions_total[5m]))

	# Degraded predictions per second (model failing, heuristic covering)
	rate(price_predictions_total{source="fallback"}[5m])

	# Average recommendations returned per run
	rate(recommendations_returned_total[5m]) / rate(recommendations_total[5m])

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use route patterns, not raw URLs
  - Prediction sources are limited to the three predefined constants
  - Decode strategy names are fixed at compile time
  - The circuit breaker name label has a single value per breaker instance

# Alerting Rules

Example Prometheus alerting rules:

	groups:
	  - name: homematch
	    rules:
	      - alert: HighErrorRate
	        expr: |
	          sum(rate(api_requests_total{status_code=~"5.."}[5m]))
	          /
	          sum(rate(api_requests_total[5m]))
	          > 0.05
	        for: 5m
	        annotations:
	          summary: "High error rate: {{ $value }}%"

	      - alert: ModelDegraded
	        expr: |
	          sum(rate(price_predictions_total{source="fallback"}[5m])) > 0
	        for: 10m
	        annotations:
	          summary: "Price model degrading to heuristic fallback"

	      - alert: CircuitBreakerOpen
	        expr: circuit_breaker_state > 0
	        for: 2m
	        annotations:
	          summary: "Circuit breaker open for {{ $labels.name }}"

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/predict: Prediction and model load metrics recording
  - internal/recommend: Recommendation pipeline metrics
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
  - https://prometheus.io/docs/practices/instrumentation/: Instrumentation guide
*/
package metrics
