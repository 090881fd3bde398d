// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package scoring

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/property"
)

// Sub-score thresholds. The returned score values (100/80/50/20 and
// 100/80/60/40 bands) are part of the published scoring contract.
const (
	commuteShortMinutes      = 15
	commuteReasonableMinutes = 30
	commuteLongMinutes       = 45

	ageVeryModernYears  = 5
	ageModernYears      = 15
	ageEstablishedYears = 30

	schoolExcellentRating = 8.0
	schoolGoodRating      = 6.0

	maxSchoolRating = 10.0
	amenitySlots    = 3
)

// Engine computes match scores for listings against buyer preferences.
//
// The engine is stateless apart from its configuration and is safe for
// concurrent use. The clock is injectable so age scoring is testable.
type Engine struct {
	cfg *Config
	now func() time.Time
	log zerolog.Logger
}

// NewEngine creates a scoring engine. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(cfg *Config, logger zerolog.Logger) *Engine {
	return NewEngineWithClock(cfg, time.Now, logger)
}

// NewEngineWithClock creates a scoring engine with an injected clock.
// Intended for tests that need a fixed current year.
//
// A nil cfg selects DefaultConfig. Invalid weights also fall back to the
// defaults: config loading already rejects bad operator input, so an
// invalid Config here is a programming error and must not produce an
// engine that scores outside [0,100].
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngineWithClock(cfg *Config, now func() time.Time, logger zerolog.Logger) *Engine {
	log := logger.With().Str("component", "scoring-engine").Logger()

	if cfg == nil {
		cfg = DefaultConfig()
	} else if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid scoring weights, using defaults")
		cfg = DefaultConfig()
	}

	return &Engine{
		cfg: cfg,
		now: now,
		log: log,
	}
}

// PriceMatchScore scores affordability. At or under budget is a perfect
// score; over budget loses a point per percent of overrun, floored at 0.
func (e *Engine) PriceMatchScore(predictedPrice, budget float64) float64 {
	if predictedPrice <= budget {
		return 100
	}
	penalty := (predictedPrice - budget) / budget * 100
	return math.Max(0, 100-penalty)
}

// BedroomScore scores bedroom fit. Meeting the minimum is a perfect score;
// below it the score is proportional to the shortfall.
func (e *Engine) BedroomScore(bedrooms, minBedrooms int) float64 {
	if bedrooms >= minBedrooms {
		return 100
	}
	return float64(bedrooms) / float64(minBedrooms) * 100
}

// SchoolRatingScore maps the 0-10 school rating linearly onto 0-100.
func (e *Engine) SchoolRatingScore(rating float64) float64 {
	return rating / maxSchoolRating * 100
}

// CommuteScore bands commute minutes: short 100, reasonable 80, long 50,
// anything beyond 20.
func (e *Engine) CommuteScore(minutes int) float64 {
	switch {
	case minutes <= commuteShortMinutes:
		return 100
	case minutes <= commuteReasonableMinutes:
		return 80
	case minutes <= commuteLongMinutes:
		return 50
	default:
		return 20
	}
}

// PropertyAgeScore bands the property age in years relative to the
// engine clock: very modern 100, modern 80, established 60, older 40.
func (e *Engine) PropertyAgeScore(yearBuilt int) float64 {
	age := e.now().Year() - yearBuilt
	switch {
	case age <= ageVeryModernYears:
		return 100
	case age <= ageModernYears:
		return 80
	case age <= ageEstablishedYears:
		return 60
	default:
		return 40
	}
}

// AmenitiesScore scores the fraction of the three tracked amenities the
// listing has.
func (e *Engine) AmenitiesScore(hasPool, hasGarage, hasGarden bool) float64 {
	count := 0
	for _, has := range []bool{hasPool, hasGarage, hasGarden} {
		if has {
			count++
		}
	}
	return float64(count) / amenitySlots * 100
}

// Score computes the weighted total match score, rounded to two decimals.
// The result is in [0,100] for any listing because every sub-score is.
func (e *Engine) Score(p property.Property, prefs property.Preferences) float64 {
	w := e.cfg.Weights

	total := w.PriceMatch*e.PriceMatchScore(p.PredictedPrice, prefs.Budget) +
		w.Bedroom*e.BedroomScore(p.Bedrooms, prefs.MinBedrooms) +
		w.SchoolRating*e.SchoolRatingScore(p.SchoolRating) +
		w.Commute*e.CommuteScore(p.CommuteTime) +
		w.PropertyAge*e.PropertyAgeScore(p.YearBuilt) +
		w.Amenities*e.AmenitiesScore(p.HasPool, p.HasGarage, p.HasGarden)

	return round2(total)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
