// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/metrics"
	"github.com/tomtom215/homematch/internal/predict"
	"github.com/tomtom215/homematch/internal/property"
	"github.com/tomtom215/homematch/internal/scoring"
)

// Result is the outcome of one recommendation run.
type Result struct {
	// Recommendations are the top listings, sorted by descending match
	// score. Ties keep generation order.
	Recommendations []property.ScoredProperty

	// TotalEvaluated is the size of the evaluation pool, independent of
	// how many recommendations were returned.
	TotalEvaluated int

	// ModelUsed reports the predictor capability for this process, not
	// per-listing outcomes. It never flips within a batch.
	ModelUsed bool
}

// Pipeline runs the generate, score, rank flow.
type Pipeline struct {
	cfg       *Config
	generator *property.Generator
	engine    *scoring.Engine
	predictor predict.Predictor
	log       zerolog.Logger
}

// NewPipeline creates a pipeline. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewPipeline(cfg *Config, generator *property.Generator, engine *scoring.Engine, predictor predict.Predictor, logger zerolog.Logger) *Pipeline {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Pipeline{
		cfg:       cfg,
		generator: generator,
		engine:    engine,
		predictor: predictor,
		log:       logger.With().Str("component", "recommendation-pipeline").Logger(),
	}
}

// Recommend generates a fresh evaluation pool, scores every listing against
// prefs, and returns the top listings by match score.
//
// propertyCount and topN values of zero or below resolve to the configured
// defaults; explicit values clamp to the configured maxima. topN never
// exceeds the pool, so a short pool returns fewer recommendations rather
// than failing.
func (pl *Pipeline) Recommend(ctx context.Context, prefs property.Preferences, propertyCount, topN int) (*Result, error) {
	start := time.Now()

	prefs = pl.resolvePreferences(prefs)
	propertyCount = resolveCount(propertyCount, pl.cfg.PropertyCount, pl.cfg.MaxPropertyCount)
	topN = resolveCount(topN, pl.cfg.TopN, pl.cfg.MaxTopN)

	properties := pl.generator.Generate(propertyCount)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommendation canceled after generation: %w", err)
	}

	// Scoring is pure per listing; no cross-listing interaction.
	scored := make([]property.ScoredProperty, 0, len(properties))
	for _, p := range properties {
		scored = append(scored, property.ScoredProperty{
			Property:   p,
			MatchScore: pl.engine.Score(p, prefs),
			Reasoning:  pl.engine.Explain(p, prefs),
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommendation canceled after scoring: %w", err)
	}

	// Stable sort keeps generation order for equal scores, which makes
	// results reproducible under a fixed seed.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if topN > len(scored) {
		topN = len(scored)
	}

	result := &Result{
		Recommendations: scored[:topN],
		TotalEvaluated:  len(properties),
		ModelUsed:       pl.predictor.UsingModel(),
	}

	metrics.RecordRecommendation(time.Since(start), result.TotalEvaluated, len(result.Recommendations))
	pl.log.Debug().
		Int("evaluated", result.TotalEvaluated).
		Int("returned", len(result.Recommendations)).
		Bool("model_used", result.ModelUsed).
		Dur("duration", time.Since(start)).
		Msg("recommendation run complete")

	return result, nil
}

// Properties generates an unscored listing batch for browsing. A count of
// zero or below resolves to the configured default; explicit values clamp
// to the configured maximum.
func (pl *Pipeline) Properties(ctx context.Context, count int) ([]property.Property, error) {
	count = resolveCount(count, pl.cfg.PropertyCount, pl.cfg.MaxPropertyCount)

	properties := pl.generator.Generate(count)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing generation canceled: %w", err)
	}
	return properties, nil
}

// ModelUsed reports the predictor capability flag.
func (pl *Pipeline) ModelUsed() bool {
	return pl.predictor.UsingModel()
}

func (pl *Pipeline) resolvePreferences(prefs property.Preferences) property.Preferences {
	if prefs.Budget <= 0 {
		prefs.Budget = pl.cfg.DefaultBudget
	}
	if prefs.MinBedrooms <= 0 {
		prefs.MinBedrooms = pl.cfg.DefaultMinBedrooms
	}
	return prefs
}

// resolveCount applies the default for unset values and the ceiling for
// explicit ones.
func resolveCount(requested, fallback, ceiling int) int {
	if requested <= 0 {
		requested = fallback
	}
	if requested > ceiling {
		return ceiling
	}
	return requested
}
