// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package main

import (
	"github.com/tomtom215/homematch/internal/config"
	"github.com/tomtom215/homematch/internal/logging"
	"github.com/tomtom215/homematch/internal/predict"
	"github.com/tomtom215/homematch/internal/property"
	"github.com/tomtom215/homematch/internal/recommend"
	"github.com/tomtom215/homematch/internal/scoring"
)

// RecommendationComponents holds the wired recommendation stack.
type RecommendationComponents struct {
	Predictor predict.Predictor
	Generator *property.Generator
	Engine    *scoring.Engine
	Pipeline  *recommend.Pipeline
}

// initRecommendation wires the predictor, generator, scoring engine, and
// pipeline from configuration. Construction never fails: an absent or
// unusable model artifact degrades to the pricing heuristic, which is the
// supported standalone mode.
func initRecommendation(cfg *config.Config) *RecommendationComponents {
	logger := logging.Logger()

	predictor := predict.New(cfg.Model.Path, cfg.Generator.Seed, logger)
	generator := property.NewGenerator(predictor, cfg.Generator.Seed, logger)

	engine := scoring.NewEngine(&scoring.Config{
		Weights: scoring.Weights{
			PriceMatch:   cfg.Scoring.Weights.PriceMatch,
			Bedroom:      cfg.Scoring.Weights.Bedroom,
			SchoolRating: cfg.Scoring.Weights.SchoolRating,
			Commute:      cfg.Scoring.Weights.Commute,
			PropertyAge:  cfg.Scoring.Weights.PropertyAge,
			Amenities:    cfg.Scoring.Weights.Amenities,
		},
	}, logger)

	pipeline := recommend.NewPipeline(&recommend.Config{
		PropertyCount:      cfg.Recommend.PropertyCount,
		TopN:               cfg.Recommend.TopN,
		MaxPropertyCount:   cfg.Recommend.MaxPropertyCount,
		MaxTopN:            cfg.Recommend.MaxTopN,
		DefaultBudget:      cfg.Recommend.DefaultBudget,
		DefaultMinBedrooms: cfg.Recommend.DefaultMinBedrooms,
	}, generator, engine, predictor, logger)

	return &RecommendationComponents{
		Predictor: predictor,
		Generator: generator,
		Engine:    engine,
		Pipeline:  pipeline,
	}
}
