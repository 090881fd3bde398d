// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package predict

import (
	"fmt"
	"math"
)

// Feature names in model order. Artifact schemas key coefficients by these
// names; Features.Vector() produces values in the same order.
var featureNames = [6]string{
	"bedrooms",
	"bathrooms",
	"square_feet",
	"year_built",
	"zip_code",
	"lot_size",
}

// LinearModel is a trained linear regression over the six property
// features. It is the in-process representation of a loaded model
// artifact; construction goes through LoadModel.
type LinearModel struct {
	Intercept    float64
	Coefficients [6]float64
}

// Validate checks that the model can produce finite predictions.
func (m *LinearModel) Validate() error {
	if !isFinite(m.Intercept) {
		return fmt.Errorf("model intercept is not finite: %f", m.Intercept)
	}
	for i, c := range m.Coefficients {
		if !isFinite(c) {
			return fmt.Errorf("model coefficient %q is not finite: %f", featureNames[i], c)
		}
	}
	return nil
}

// Predict evaluates the regression for a single feature vector.
// It returns an error when the result is not a finite number, which the
// caller treats as a per-call failure and degrades to the heuristic.
func (m *LinearModel) Predict(f Features) (float64, error) {
	vector := f.Vector()
	price := m.Intercept
	for i, c := range m.Coefficients {
		price += c * vector[i]
	}
	if !isFinite(price) {
		return 0, fmt.Errorf("model produced non-finite price %f", price)
	}
	return price, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
