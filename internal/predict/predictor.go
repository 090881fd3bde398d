// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

// Package predict provides the price-prediction capability used during
// property generation: a trained linear model loaded from an on-disk
// artifact when available, and a deterministic heuristic otherwise.
//
// The capability is chosen once at startup and is read-only afterwards,
// so a single Predictor is safe for concurrent use across requests.
package predict

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/metrics"
)

// Features holds the numeric inputs to a price prediction.
type Features struct {
	Bedrooms   float64
	Bathrooms  float64
	SquareFeet float64
	YearBuilt  float64
	ZipCode    float64
	LotSize    float64
}

// Vector returns the features as a fixed-order vector. The order is the
// contract with trained model artifacts and must never change:
// bedrooms, bathrooms, square_feet, year_built, zip_code, lot_size.
func (f Features) Vector() [6]float64 {
	return [6]float64{f.Bedrooms, f.Bathrooms, f.SquareFeet, f.YearBuilt, f.ZipCode, f.LotSize}
}

// Predictor turns property features into a price estimate.
//
// Predict never fails from the caller's perspective: implementations that
// can error internally (the model path) degrade to the heuristic for that
// single call. UsingModel reports whether the trained-model path is active
// for this process; it is fixed at construction and never flips mid-batch.
type Predictor interface {
	Predict(f Features) float64
	UsingModel() bool
}

// New selects the predictor for this process: the trained model at
// modelPath behind a circuit breaker when a usable artifact exists, the
// heuristic otherwise. Artifact problems are never fatal.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func New(modelPath string, seed int64, logger zerolog.Logger) Predictor {
	heuristic := NewHeuristic(seed)

	model, strategy, err := LoadModel(modelPath, logger)
	if err != nil {
		if !errors.Is(err, ErrModelNotFound) {
			logger.Warn().Err(err).Str("path", modelPath).Msg("model artifact unusable, using heuristic predictions")
		}
		metrics.SetModelLoaded(false)
		return heuristic
	}

	metrics.SetModelLoaded(true)
	logger.Info().Str("strategy", strategy).Str("path", modelPath).Msg("price model active")
	return NewModelPredictor(model, heuristic)
}

// Rand supplies the uniform draws used by the heuristic's noise factor.
// Implementations must be safe for concurrent use when the predictor is
// shared across requests; *lockedRand and the test stubs both qualify.
type Rand interface {
	Float64() float64
}

// lockedRand is a mutex-guarded rand.Rand, the default noise source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // math/rand is fine for pricing noise
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
