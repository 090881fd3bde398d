// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package models

import (
	"github.com/tomtom215/homematch/internal/property"
)

// PreferencesPayload carries the buyer preferences of a recommendation
// request. Both fields are optional pointers: an absent field resolves to
// the configured default downstream, while a present-but-invalid value
// (budget of 0, negative bedrooms) is rejected with a validation error
// rather than silently replaced.
//
// Example payload:
//
//	{
//	  "budget": 450000,
//	  "min_bedrooms": 3
//	}
type PreferencesPayload struct {
	// Budget is the maximum intended spend in dollars. Optional; must be
	// positive when present.
	Budget *float64 `json:"budget" validate:"omitempty,gt=0"`

	// MinBedrooms is the minimum acceptable bedroom count. Optional; must
	// be at least 1 when present.
	MinBedrooms *int `json:"min_bedrooms" validate:"omitempty,gte=1"`
}

// Resolve converts the wire payload into scoring preferences. Absent fields
// stay zero so the pipeline applies its configured defaults.
func (p PreferencesPayload) Resolve() property.Preferences {
	var prefs property.Preferences
	if p.Budget != nil {
		prefs.Budget = *p.Budget
	}
	if p.MinBedrooms != nil {
		prefs.MinBedrooms = *p.MinBedrooms
	}
	return prefs
}

// RecommendRequest is the body of POST /api/recommend. Every field is
// optional; an entirely empty body is rejected before decoding reaches
// this type.
//
// Example payload:
//
//	{
//	  "preferences": {
//	    "budget": 450000,
//	    "min_bedrooms": 3
//	  },
//	  "property_count": 30,
//	  "num_recommendations": 5
//	}
//
// property_count sizes the evaluation pool and num_recommendations caps the
// returned list. Values above the configured maxima are clamped rather than
// rejected; values below 1 are rejected.
type RecommendRequest struct {
	// Preferences are the buyer preferences to score listings against.
	Preferences PreferencesPayload `json:"preferences"`

	// PropertyCount is the number of listings to generate and evaluate.
	// Optional; must be at least 1 when present.
	PropertyCount *int `json:"property_count" validate:"omitempty,gte=1"`

	// NumRecommendations is the number of top listings to return.
	// Optional; must be at least 1 when present.
	NumRecommendations *int `json:"num_recommendations" validate:"omitempty,gte=1"`
}

// Counts returns the requested pool size and recommendation count, zero for
// absent fields so the pipeline applies its configured defaults.
func (r RecommendRequest) Counts() (propertyCount, topN int) {
	if r.PropertyCount != nil {
		propertyCount = *r.PropertyCount
	}
	if r.NumRecommendations != nil {
		topN = *r.NumRecommendations
	}
	return propertyCount, topN
}
