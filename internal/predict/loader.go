// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package predict

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/homematch/internal/metrics"
)

// ErrModelNotFound reports that no model artifact exists at the configured
// path. The service treats this as normal and runs on the heuristic.
var ErrModelNotFound = errors.New("model artifact not found")

// modelArtifact is the current on-disk schema: an intercept plus one
// coefficient per feature name.
type modelArtifact struct {
	Intercept    float64            `json:"intercept" yaml:"intercept"`
	Coefficients map[string]float64 `json:"coefficients" yaml:"coefficients"`
}

func (a *modelArtifact) toModel() (*LinearModel, error) {
	model := &LinearModel{Intercept: a.Intercept}
	for i, name := range featureNames {
		c, ok := a.Coefficients[name]
		if !ok {
			return nil, fmt.Errorf("artifact missing coefficient %q", name)
		}
		model.Coefficients[i] = c
	}
	return model, nil
}

// loadStrategy is one way of decoding an artifact. Strategies are tried in
// order; the first one that decodes and validates wins. This mirrors the
// multi-format history of the artifact: the current JSON schema, the legacy
// flat-array export, and the YAML variant used by older training jobs.
type loadStrategy struct {
	name   string
	decode func(data []byte) (*LinearModel, error)
}

func loadStrategies() []loadStrategy {
	return []loadStrategy{
		{name: "json", decode: decodeJSON},
		{name: "legacy-json", decode: decodeLegacyJSON},
		{name: "yaml", decode: decodeYAML},
	}
}

func decodeJSON(data []byte) (*LinearModel, error) {
	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode json artifact: %w", err)
	}
	if len(artifact.Coefficients) == 0 {
		return nil, errors.New("json artifact has no coefficients")
	}
	return artifact.toModel()
}

// decodeLegacyJSON reads the flat-array export format:
// [intercept, bedrooms, bathrooms, square_feet, year_built, zip_code, lot_size].
func decodeLegacyJSON(data []byte) (*LinearModel, error) {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode legacy json artifact: %w", err)
	}
	if len(values) != len(featureNames)+1 {
		return nil, fmt.Errorf("legacy artifact has %d values, want %d", len(values), len(featureNames)+1)
	}
	model := &LinearModel{Intercept: values[0]}
	copy(model.Coefficients[:], values[1:])
	return model, nil
}

func decodeYAML(data []byte) (*LinearModel, error) {
	var artifact modelArtifact
	if err := yaml.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode yaml artifact: %w", err)
	}
	if len(artifact.Coefficients) == 0 {
		return nil, errors.New("yaml artifact has no coefficients")
	}
	return artifact.toModel()
}

// LoadModel reads and decodes the model artifact at path.
//
// Returns the model and the name of the strategy that decoded it, or
// ErrModelNotFound when the file does not exist. Per-strategy failures are
// logged and counted but not fatal as long as a later strategy succeeds.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func LoadModel(path string, logger zerolog.Logger) (*LinearModel, string, error) {
	log := logger.With().Str("component", "model-loader").Str("path", path).Logger()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info().Msg("model artifact not found, using heuristic predictions")
			return nil, "", fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, "", fmt.Errorf("read model artifact: %w", err)
	}

	var lastErr error
	for _, strategy := range loadStrategies() {
		log.Debug().Str("strategy", strategy.name).Msg("attempting to decode model artifact")

		model, err := strategy.decode(data)
		if err != nil {
			metrics.RecordModelLoad(strategy.name, false)
			log.Debug().Err(err).Str("strategy", strategy.name).Msg("model decode failed")
			lastErr = err
			continue
		}
		if err := model.Validate(); err != nil {
			metrics.RecordModelLoad(strategy.name, false)
			log.Warn().Err(err).Str("strategy", strategy.name).Msg("decoded model failed validation")
			lastErr = err
			continue
		}

		metrics.RecordModelLoad(strategy.name, true)
		log.Info().Str("strategy", strategy.name).Msg("model loaded")
		return model, strategy.name, nil
	}

	return nil, "", fmt.Errorf("unable to decode model artifact %s: %w", path, lastErr)
}
