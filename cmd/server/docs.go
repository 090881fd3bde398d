// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// This file holds the swag general API annotations. Regenerate the docs
// package after editing:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Homematch API
// @version 1.0
// @description Property recommendation service: generates synthetic listings, predicts prices, and ranks matches against buyer preferences.
// @description
// @description ## Price Prediction
// @description
// @description Each listing carries a predicted price. When a trained model artifact is
// @description available it is used; otherwise a deterministic heuristic produces the
// @description estimate. The `model_used` field in recommendation responses and the
// @description `model_loaded` field in health responses report which path is active.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Throttled requests receive HTTP 429 with a `Retry-After` header.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": "Human-readable error message"
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/homematch
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
//
// @tag.name Health
// @tag.description Service health and model status
//
// @tag.name Recommendations
// @tag.description Scored property recommendations
//
// @tag.name Properties
// @tag.description Unscored property listing pools
package main

import (
	_ "github.com/tomtom215/homematch/docs" // Import generated swagger docs
)
