// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package property

import (
	"github.com/tomtom215/homematch/internal/predict"
)

// Property is a single listing in the evaluation pool. Field names and JSON
// tags are part of the public API response shape.
type Property struct {
	ID             int     `json:"id"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        int     `json:"zip_code"`
	Bedrooms       int     `json:"bedrooms"`
	Bathrooms      int     `json:"bathrooms"`
	SquareFeet     int     `json:"square_feet"`
	YearBuilt      int     `json:"year_built"`
	LotSize        int     `json:"lot_size"`
	PropertyType   string  `json:"property_type"`
	SchoolRating   float64 `json:"school_rating"`
	CommuteTime    int     `json:"commute_time"`
	HasPool        bool    `json:"has_pool"`
	HasGarage      bool    `json:"has_garage"`
	HasGarden      bool    `json:"has_garden"`
	PredictedPrice float64 `json:"predicted_price"`
	ImageURL       string  `json:"image_url"`
}

// Features maps the listing onto the model feature vector.
func (p Property) Features() predict.Features {
	return predict.Features{
		Bedrooms:   float64(p.Bedrooms),
		Bathrooms:  float64(p.Bathrooms),
		SquareFeet: float64(p.SquareFeet),
		YearBuilt:  float64(p.YearBuilt),
		ZipCode:    float64(p.ZipCode),
		LotSize:    float64(p.LotSize),
	}
}

// Age returns the property age in years relative to currentYear. Never
// negative; listings "built next year" count as new.
func (p Property) Age(currentYear int) int {
	age := currentYear - p.YearBuilt
	if age < 0 {
		return 0
	}
	return age
}

// Preferences are the resolved buyer preferences used for scoring. Wire
// requests carry optional fields; by the time scoring runs, defaults have
// been applied and both values are concrete.
type Preferences struct {
	Budget      float64 `json:"budget"`
	MinBedrooms int     `json:"min_bedrooms"`
}

// ScoredProperty is a listing annotated with its match score and the
// human-readable reasoning behind it. Embedding keeps the JSON flat: the
// score and reasoning sit alongside the listing fields.
type ScoredProperty struct {
	Property
	MatchScore float64 `json:"match_score"`
	Reasoning  string  `json:"reasoning"`
}
