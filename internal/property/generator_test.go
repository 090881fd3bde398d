// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package property

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/predict"
)

// fixedPredictor returns a constant price, isolating generator behavior
// from pricing noise.
type fixedPredictor struct {
	price float64
	model bool
}

func (p fixedPredictor) Predict(predict.Features) float64 { return p.price }
func (p fixedPredictor) UsingModel() bool                 { return p.model }

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func TestGenerator_GenerateFieldRanges(t *testing.T) {
	t.Parallel()

	g := NewGenerator(fixedPredictor{price: 410000}, 42, zerolog.Nop())

	// Two image-cycle lengths plus change, to cover the wraparound.
	properties := g.Generate(30)
	if len(properties) != 30 {
		t.Fatalf("Generate(30) returned %d listings", len(properties))
	}

	for i, p := range properties {
		if p.ID != i+1 {
			t.Errorf("listing %d: ID = %d, want %d", i, p.ID, i+1)
		}
		if p.Bedrooms < bedroomsMin || p.Bedrooms >= bedroomsMax {
			t.Errorf("listing %d: Bedrooms = %d, want in [%d,%d)", i, p.Bedrooms, bedroomsMin, bedroomsMax)
		}
		if p.Bathrooms < 1 || p.Bathrooms > p.Bedrooms || p.Bathrooms < p.Bedrooms-1 {
			t.Errorf("listing %d: Bathrooms = %d with Bedrooms = %d", i, p.Bathrooms, p.Bedrooms)
		}
		if p.SquareFeet < squareFeetMin || p.SquareFeet >= squareFeetMax {
			t.Errorf("listing %d: SquareFeet = %d, want in [%d,%d)", i, p.SquareFeet, squareFeetMin, squareFeetMax)
		}
		if p.YearBuilt < yearBuiltMin || p.YearBuilt >= yearBuiltMax {
			t.Errorf("listing %d: YearBuilt = %d, want in [%d,%d)", i, p.YearBuilt, yearBuiltMin, yearBuiltMax)
		}
		if p.LotSize < lotSizeMin || p.LotSize >= lotSizeMax {
			t.Errorf("listing %d: LotSize = %d, want in [%d,%d)", i, p.LotSize, lotSizeMin, lotSizeMax)
		}
		if p.SchoolRating < schoolRatingMin || p.SchoolRating > schoolRatingMax {
			t.Errorf("listing %d: SchoolRating = %f, want in [%f,%f]", i, p.SchoolRating, schoolRatingMin, schoolRatingMax)
		}
		if p.CommuteTime < commuteMin || p.CommuteTime >= commuteMax {
			t.Errorf("listing %d: CommuteTime = %d, want in [%d,%d)", i, p.CommuteTime, commuteMin, commuteMax)
		}
		if !containsInt(ZipCodes, p.ZipCode) {
			t.Errorf("listing %d: ZipCode = %d not in catalog", i, p.ZipCode)
		}
		if !containsString(Cities, p.City) {
			t.Errorf("listing %d: City = %q not in catalog", i, p.City)
		}
		if !containsString(States, p.State) {
			t.Errorf("listing %d: State = %q not in catalog", i, p.State)
		}
		if p.PropertyType != "House" {
			t.Errorf("listing %d: PropertyType = %q, want House", i, p.PropertyType)
		}
		if p.ImageURL != ImageURLs[i%len(ImageURLs)] {
			t.Errorf("listing %d: ImageURL = %q, want cycle position %d", i, p.ImageURL, i%len(ImageURLs))
		}
		if p.PredictedPrice != 410000 {
			t.Errorf("listing %d: PredictedPrice = %f, want predictor value 410000", i, p.PredictedPrice)
		}

		assertAddress(t, i, p.Address)
	}
}

func assertAddress(t *testing.T, i int, address string) {
	t.Helper()

	parts := strings.Fields(address)
	if len(parts) != 3 || parts[2] != "St" {
		t.Errorf("listing %d: Address = %q, want \"<number> <street> St\"", i, address)
		return
	}

	number, err := strconv.Atoi(parts[0])
	if err != nil || number < streetNumberMin || number >= streetNumberMax {
		t.Errorf("listing %d: street number %q, want in [%d,%d)", i, parts[0], streetNumberMin, streetNumberMax)
	}
	if !containsString(StreetNames, parts[1]) {
		t.Errorf("listing %d: street %q not in catalog", i, parts[1])
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	pred := fixedPredictor{price: 300000}

	g1 := NewGenerator(pred, 99, zerolog.Nop())
	g2 := NewGenerator(pred, 99, zerolog.Nop())

	batch1 := g1.Generate(10)
	batch2 := g2.Generate(10)

	if !reflect.DeepEqual(batch1, batch2) {
		t.Error("generators with equal seeds produced different batches")
	}
}

func TestGenerator_RoundsPredictedPrice(t *testing.T) {
	t.Parallel()

	g := NewGenerator(fixedPredictor{price: 123456.789}, 1, zerolog.Nop())

	for _, p := range g.Generate(5) {
		if p.PredictedPrice != 123456.79 {
			t.Errorf("PredictedPrice = %f, want 123456.79", p.PredictedPrice)
		}
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	t.Parallel()

	g := NewGenerator(fixedPredictor{price: 1}, 1, zerolog.Nop())

	properties := g.Generate(0)
	if properties == nil {
		t.Fatal("Generate(0) = nil, want empty slice")
	}
	if len(properties) != 0 {
		t.Errorf("Generate(0) returned %d listings", len(properties))
	}
}

func TestGenerator_NegativeCount(t *testing.T) {
	t.Parallel()

	g := NewGenerator(fixedPredictor{price: 1}, 1, zerolog.Nop())

	// A negative capacity would panic make; the guard treats it as zero.
	properties := g.Generate(-5)
	if properties == nil {
		t.Fatal("Generate(-5) = nil, want empty slice")
	}
	if len(properties) != 0 {
		t.Errorf("Generate(-5) returned %d listings", len(properties))
	}
}
