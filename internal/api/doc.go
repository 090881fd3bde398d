// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package api provides the HTTP REST API layer for Homematch.

This package implements the HTTP endpoints for property recommendations,
property pool listings, and service health. It serves as the interface
between the search frontend and the recommendation pipeline.

Key Components:

  - Router: HTTP route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Flat JSON responses with a success flag
  - Error handling: Consistent error responses with appropriate HTTP status codes
  - Rate limiting: Per-IP limits with endpoint-specific overrides
  - CORS: Cross-Origin Resource Sharing for frontend compatibility

API Categories:

The API is organized into the following categories:

1. Health Endpoint (/api/health):
  - Service liveness plus whether the trained price model is loaded

2. Recommendation Endpoint (/api/recommend):
  - Accepts buyer preferences and optional generation counts
  - Returns the top matches sorted by match score with reasoning

3. Property Endpoint (/api/properties):
  - Returns a freshly generated, unscored property pool
  - Pool size controlled by the count query parameter

4. Observability (/metrics, /swagger/*):
  - Prometheus metrics exposition
  - Interactive OpenAPI documentation

Usage Example:

	import (
	    "github.com/tomtom215/homematch/internal/api"
	    "github.com/tomtom215/homematch/internal/recommend"
	)

	// Create dependencies
	pipeline := recommend.NewPipeline(cfg, generator, engine, predictor, logger)
	chiMw := api.NewChiMiddlewareFromSecurity(corsOrigins, 100, time.Minute, false)

	// Create handler and router
	handler := api.NewHandler(pipeline)
	router := api.NewRouter(handler, chiMw)

	// Setup routes and start server
	http.ListenAndServe(":5001", router.SetupChi())

Performance Characteristics:

  - Response times: p95 <100ms for default pool sizes (target)
  - Caching: disabled; every response body is freshly randomized
  - Compression: Gzip middleware for responses >1KB

Thread Safety:

All handlers are thread-safe and designed for concurrent request handling.
The pipeline owns no mutable request state beyond its seeded random source,
which is guarded internally.

Security:

  - Rate limiting (100 req/min per IP, 1000/min for health)
  - Security headers on every API response
  - Input validation via go-playground/validator
  - Request body size capped at 1 MiB
  - Log output sanitized against injection

See Also:

  - internal/recommend: Recommendation pipeline orchestration
  - internal/models: Request/response data structures
  - internal/middleware: HTTP middleware components
*/
package api
