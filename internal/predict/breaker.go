// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package predict

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/homematch/internal/logging"
	"github.com/tomtom215/homematch/internal/metrics"
)

// ModelPredictor serves predictions from a trained linear model behind a
// circuit breaker, degrading to the heuristic when the model misbehaves.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. This is intentional for
// production resilience:
// - The timing determines when to recover from failures, not data integrity
// - Tests should exercise the LinearModel directly, not the breaker timing
//
// UsingModel reports the startup capability, not per-call outcomes: a batch
// that degraded some predictions still reports model_used=true.
type ModelPredictor struct {
	model    *LinearModel
	fallback *Heuristic
	cb       *gobreaker.CircuitBreaker[float64]
	name     string
}

// NewModelPredictor wraps model with circuit breaker protection, falling
// back to fallback for individual predictions when the model fails or the
// circuit is open.
//
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewModelPredictor(model *LinearModel, fallback *Heuristic) *ModelPredictor {
	cbName := "price-model"

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			// Update metrics
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			// Reset consecutive failures when transitioning to closed
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &ModelPredictor{
		model:    model,
		fallback: fallback,
		cb:       cb,
		name:     cbName,
	}
}

// Predict runs the model through the circuit breaker. Any failure, or a
// rejection while the circuit is open, degrades that single prediction to
// the heuristic estimate so a bad model never takes the service down.
func (mp *ModelPredictor) Predict(f Features) float64 {
	price, err := mp.cb.Execute(func() (float64, error) {
		return mp.model.Predict(f)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// Circuit is open or too many concurrent requests in half-open state
			metrics.CircuitBreakerRequests.WithLabelValues(mp.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Prediction rejected, using heuristic")
		} else {
			// Model call failed
			metrics.CircuitBreakerRequests.WithLabelValues(mp.name, "failure").Inc()
			logging.Warn().Err(err).Msg("Model prediction failed, using heuristic")

			// Increment consecutive failures
			counts := mp.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(mp.name).Set(float64(counts.ConsecutiveFailures))
		}

		metrics.RecordPrediction(metrics.PredictionSourceFallback)
		return mp.fallback.estimate(f)
	}

	// Prediction succeeded
	metrics.CircuitBreakerRequests.WithLabelValues(mp.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(mp.name).Set(0)

	metrics.RecordPrediction(metrics.PredictionSourceModel)
	return price
}

// UsingModel reports true for the lifetime of the predictor regardless of
// per-call degradation.
func (mp *ModelPredictor) UsingModel() bool { return true }

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
