// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, request
ID tracking, and Prometheus metrics integration. The middleware here is
written against http.HandlerFunc; the api package adapts it to Chi's
func(http.Handler) http.Handler shape when building the router.

Key Components:

  - Compression: Gzip compression for responses >1KB
  - Request ID: UUID-based request tracking for distributed tracing
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The router applies RequestID globally, then per-group:

	r.Route("/api", func(r chi.Router) {
	    r.Use(rateLimit)
	    r.Use(chiMiddleware(middleware.Compression))
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    ...
	})

Usage Example - Compression:

	import "github.com/tomtom215/homematch/internal/middleware"

	// Wrap handler with gzip compression
	http.HandleFunc("/api/recommend",
	    middleware.Compression(handler),
	)

	// Responses >1KB are automatically compressed
	// Accept-Encoding: gzip header is required

Usage Example - Request ID:

	// Incoming X-Request-ID headers are honored; otherwise a UUID is
	// generated. The ID is stored in the request context for logging
	// and echoed back on the response.
	http.HandleFunc("/api/properties",
	    middleware.RequestID(handler),
	)

Prometheus metrics are recorded per method/endpoint/status with request
duration histograms; see the metrics package for the metric families.
*/
package middleware
