// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// Package main is the entry point for the Homematch server application.
//
// Homematch generates synthetic property listings, predicts a price for
// each one (trained linear model when available, deterministic heuristic
// otherwise), scores listings against buyer preferences, and serves the
// top matches with human-readable reasoning over a small REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: Configure the global zerolog logger
//  3. Predictor: Load the price model artifact, or fall back to the heuristic
//  4. Pipeline: Wire generator, scoring engine, and predictor
//  5. HTTP Server: Chi router with CORS, rate limiting, and Prometheus metrics
//  6. Supervisor: suture tree running the HTTP server with restart-on-failure
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml or CONFIG_PATH)
//   - Built-in defaults
//
// Every setting has a working default; a bare `homematch` starts a
// development server on :5001 with heuristic-only pricing.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Reports services that failed to stop in time
//
// # Example Usage
//
// Development (heuristic pricing, console logs):
//
//	export LOG_FORMAT=console
//	./homematch
//
// With a trained price model:
//
//	export MODEL_PATH=/models/price_model.json
//	./homematch
//
// Reproducible listing batches (demos, screenshot tests):
//
//	export GENERATOR_SEED=42
//	./homematch
//
// # Port 5001
//
// The default port 5001 is carried over from the original prototype
// deployment so existing clients keep working unchanged.
package main
