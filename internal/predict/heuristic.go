// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package predict

import (
	"github.com/tomtom215/homematch/internal/metrics"
)

// Heuristic pricing parameters. The formula is a published compatibility
// contract with existing integrations; change the constants, not the shape.
const (
	heuristicBasePrice      = 200000.0
	heuristicPerBedroom     = 50000.0
	heuristicPerBathroom    = 30000.0
	heuristicPerSquareFoot  = 100.0
	heuristicBaseSquareFeet = 1500.0
	heuristicMinPrice       = 50000.0

	// Noise bounds: each estimate is multiplied by uniform [0.9, 1.1).
	noiseFloor = 0.9
	noiseSpan  = 0.2
)

// Heuristic is the deterministic-shaped fallback predictor used when no
// trained model artifact is available, and as the per-call degradation
// path when the model fails.
type Heuristic struct {
	rand Rand
}

// NewHeuristic creates a heuristic predictor with a seeded noise source.
// A zero seed selects a time-based seed.
func NewHeuristic(seed int64) *Heuristic {
	return &Heuristic{rand: newLockedRand(seed)}
}

// NewHeuristicWithRand creates a heuristic predictor with an injected
// noise source. Intended for tests that need zero-variance estimates.
func NewHeuristicWithRand(r Rand) *Heuristic {
	return &Heuristic{rand: r}
}

// Predict implements Predictor.
func (h *Heuristic) Predict(f Features) float64 {
	price := h.estimate(f)
	metrics.RecordPrediction(metrics.PredictionSourceHeuristic)
	return price
}

// UsingModel implements Predictor. The heuristic is never the model path.
func (h *Heuristic) UsingModel() bool {
	return false
}

// estimate computes the heuristic price:
//
//	price = 200000
//	price += bedrooms * 50000
//	price += bathrooms * 30000
//	price += (square_feet - 1500) * 100
//	if zip_code != 0: price *= 1 + (zip_code mod 100) / 1000
//	price *= uniform(0.9, 1.1)
//	price = max(price, 50000)
//
// The noise multiplier is the only non-deterministic element.
func (h *Heuristic) estimate(f Features) float64 {
	price := heuristicBasePrice
	price += f.Bedrooms * heuristicPerBedroom
	price += f.Bathrooms * heuristicPerBathroom
	price += (f.SquareFeet - heuristicBaseSquareFeet) * heuristicPerSquareFoot

	if f.ZipCode != 0 {
		zip := int(f.ZipCode)
		locationFactor := 1 + float64(zip%100)/1000
		price *= locationFactor
	}

	price *= noiseFloor + h.rand.Float64()*noiseSpan

	if price < heuristicMinPrice {
		return heuristicMinPrice
	}
	return price
}
