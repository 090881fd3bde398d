// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package config provides layered application configuration using Koanf v2.

Configuration is assembled from three layers, later layers overriding
earlier ones:

 1. Struct defaults (defaultConfig)
 2. An optional YAML config file (CONFIG_PATH, ./config.yaml, or
    /etc/homematch/config.yaml)
 3. Environment variables, mapped through an explicit allowlist so stray
    process environment never leaks into configuration

A .env file in the working directory is folded into the environment first
via godotenv for development convenience.

Sections:

  - Server: bind address, port, timeouts, environment mode
  - Model: price model artifact path
  - Generator: random seed for synthetic listing generation
  - Scoring: match sub-score weights (must sum to 1.0)
  - Recommend: pool sizes, result counts, preference defaults
  - Security: CORS origins and rate limiting
  - Logging: zerolog level/format/caller

Usage:

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    // startup failure - the error names the offending variable
	    os.Exit(1)
	}

Every setting has a working default; a bare `homematch` with no file and
no environment starts a development server on :5001 with heuristic-only
pricing.

Validation runs as part of loading and fails fast with the environment
variable name in the message, so a bad deployment dies at startup instead
of serving misconfigured scores.
*/
package config
