// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

/*
Package models defines the HTTP wire types for the Homematch API.

This package contains the request and response structures exchanged with
clients. It serves as the single source of truth for the API contract: JSON
tags here define the field names clients see, and validator tags here define
what the server accepts.

Key Components:

  - RecommendRequest / PreferencesPayload: Body of POST /api/recommend
  - RecommendResponse: Scored recommendations with pool metadata
  - PropertiesResponse: Unscored listing batches from GET /api/properties
  - HealthResponse: GET /api/health body
  - ErrorResponse: Uniform {"success":false,"error":...} error body

Optional Field Convention:

Request fields that have server-side defaults are pointers with
omitempty-prefixed validator tags:

	type PreferencesPayload struct {
	    Budget      *float64 `json:"budget" validate:"omitempty,gt=0"`
	    MinBedrooms *int     `json:"min_bedrooms" validate:"omitempty,gte=1"`
	}

An absent field decodes to nil and resolves to the configured default
downstream. A present field is validated as written, so an explicit
"budget": 0 is rejected instead of silently replaced. The Resolve and
Counts helpers convert pointers to concrete values for the pipeline.

Usage Example:

	import "github.com/tomtom215/homematch/internal/models"

	var req models.RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
	    // 400 malformed JSON
	}
	if err := validation.ValidateStruct(&req); err != nil {
	    // 400 with field details
	}
	prefs := req.Preferences.Resolve()
	propertyCount, topN := req.Counts()

Response types embed the listing structs from internal/property directly,
so a ScoredProperty serializes flat: listing fields, match_score, and
reasoning all sit at the same level.

Thread Safety:

All models are data structures only, safe for concurrent read access.

See Also:

  - internal/api: Handlers decoding and encoding these types
  - internal/property: Listing structs embedded in responses
  - internal/validation: Validator wiring for the request tags
*/
package models
