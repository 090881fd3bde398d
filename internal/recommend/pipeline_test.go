// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package recommend

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/predict"
	"github.com/tomtom215/homematch/internal/property"
	"github.com/tomtom215/homematch/internal/scoring"
)

type stubPredictor struct {
	price float64
	model bool
}

func (s stubPredictor) Predict(predict.Features) float64 { return s.price }
func (s stubPredictor) UsingModel() bool                 { return s.model }

func fixedClock() time.Time {
	return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newTestPipeline(t *testing.T, cfg *Config, pred predict.Predictor) *Pipeline {
	t.Helper()

	gen := property.NewGenerator(pred, 42, zerolog.Nop())
	engine := scoring.NewEngineWithClock(scoring.DefaultConfig(), fixedClock, zerolog.Nop())
	return NewPipeline(cfg, gen, engine, pred, zerolog.Nop())
}

func TestPipeline_RecommendDefaults(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 0, 0)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}

	if result.TotalEvaluated != 20 {
		t.Errorf("TotalEvaluated = %d, want 20", result.TotalEvaluated)
	}
	if len(result.Recommendations) != 3 {
		t.Errorf("len(Recommendations) = %d, want 3", len(result.Recommendations))
	}
	if result.ModelUsed {
		t.Error("ModelUsed = true, want false for heuristic predictor")
	}
}

func TestPipeline_RecommendSortedDescending(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 50, 50)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}

	for i := 1; i < len(result.Recommendations); i++ {
		prev := result.Recommendations[i-1].MatchScore
		cur := result.Recommendations[i].MatchScore
		if cur > prev {
			t.Fatalf("recommendation %d: score %f after %f, want descending", i, cur, prev)
		}
	}
}

func TestPipeline_StableTiesKeepGenerationOrder(t *testing.T) {
	t.Parallel()

	// All weight on amenities yields only four distinct scores across the
	// pool, guaranteeing ties.
	engineCfg := &scoring.Config{Weights: scoring.Weights{Amenities: 1}}
	pred := stubPredictor{price: 400000}
	gen := property.NewGenerator(pred, 42, zerolog.Nop())
	engine := scoring.NewEngineWithClock(engineCfg, fixedClock, zerolog.Nop())
	pl := NewPipeline(nil, gen, engine, pred, zerolog.Nop())

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 40, 40)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}

	for i := 1; i < len(result.Recommendations); i++ {
		prev := result.Recommendations[i-1]
		cur := result.Recommendations[i]
		if cur.MatchScore == prev.MatchScore && cur.ID < prev.ID {
			t.Fatalf("tied listings out of generation order: id %d before id %d", prev.ID, cur.ID)
		}
	}
}

func TestPipeline_TopNClampedToPool(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 5, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}

	if result.TotalEvaluated != 5 {
		t.Errorf("TotalEvaluated = %d, want 5", result.TotalEvaluated)
	}
	if len(result.Recommendations) != 5 {
		t.Errorf("len(Recommendations) = %d, want all 5 available", len(result.Recommendations))
	}
}

func TestPipeline_CeilingsClampExplicitValues(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 10000, 10000)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}

	if result.TotalEvaluated != maxPropertyCount {
		t.Errorf("TotalEvaluated = %d, want ceiling %d", result.TotalEvaluated, maxPropertyCount)
	}
	if len(result.Recommendations) != maxTopN {
		t.Errorf("len(Recommendations) = %d, want ceiling %d", len(result.Recommendations), maxTopN)
	}
}

func TestPipeline_PreferenceDefaultsApplied(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 0, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations returned")
	}

	// The default budget shows up verbatim in the budget clause.
	reasoning := result.Recommendations[0].Reasoning
	if !strings.Contains(reasoning, "$500,000 budget") {
		t.Errorf("reasoning = %q, want default budget mentioned", reasoning)
	}
}

func TestPipeline_ModelUsedReflectsPredictor(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000, model: true})

	result, err := pl.Recommend(context.Background(), property.Preferences{}, 1, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v, want nil", err)
	}
	if !result.ModelUsed {
		t.Error("ModelUsed = false, want true for model predictor")
	}
	if !pl.ModelUsed() {
		t.Error("ModelUsed() = false, want true")
	}
}

func TestPipeline_RecommendCanceledContext(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pl.Recommend(ctx, property.Preferences{}, 0, 0); err == nil {
		t.Error("Recommend() error = nil, want context error")
	}
}

func TestPipeline_Properties(t *testing.T) {
	t.Parallel()

	pl := newTestPipeline(t, nil, stubPredictor{price: 400000})

	t.Run("default count", func(t *testing.T) {
		properties, err := pl.Properties(context.Background(), 0)
		if err != nil {
			t.Fatalf("Properties() error = %v, want nil", err)
		}
		if len(properties) != 20 {
			t.Errorf("len(properties) = %d, want 20", len(properties))
		}
	})

	t.Run("explicit count", func(t *testing.T) {
		properties, err := pl.Properties(context.Background(), 7)
		if err != nil {
			t.Fatalf("Properties() error = %v, want nil", err)
		}
		if len(properties) != 7 {
			t.Errorf("len(properties) = %d, want 7", len(properties))
		}
	})

	t.Run("count above ceiling clamps", func(t *testing.T) {
		properties, err := pl.Properties(context.Background(), 10000)
		if err != nil {
			t.Fatalf("Properties() error = %v, want nil", err)
		}
		if len(properties) != maxPropertyCount {
			t.Errorf("len(properties) = %d, want %d", len(properties), maxPropertyCount)
		}
	})
}
