// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package property

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homematch/internal/metrics"
	"github.com/tomtom215/homematch/internal/predict"
)

// Catalogs for generated listings. These are fixed mock-market data; the
// frontend and API examples reference them, so treat changes as breaking.
var (
	ZipCodes    = []int{10001, 10002, 10003, 90210, 94102, 60601, 77001, 30301, 33101, 98101}
	Cities      = []string{"New York", "Los Angeles", "Chicago", "Houston", "Atlanta", "Miami", "Seattle"}
	States      = []string{"NY", "CA", "IL", "TX", "GA", "FL", "WA"}
	StreetNames = []string{"Main", "Oak", "Park", "Maple", "Elm"}

	// ImageURLs are assigned cyclically by listing index so repeated
	// batches show stable imagery per position.
	ImageURLs = []string{
		"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-156401379991-8e60b09b8fe7?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1568605116820-0c0a4313b0e4?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1568605117026-5f8557b12d10?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600607687644-c7171b42498b?w=800&h=600&fit=crop",
		"https://images.unsplash.com/photo-1600585154084-4e5fe7c39198?w=800&h=600&fit=crop",
	}
)

// FallbackImageURL is served by the frontend when a listing image fails to
// load.
const FallbackImageURL = "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800&h=600&fit=crop"

// Generation ranges. Integer ranges are half-open [min, max); the school
// rating is uniform over [min, max) rounded to one decimal.
const (
	bedroomsMin   = 1
	bedroomsMax   = 6
	squareFeetMin = 800
	squareFeetMax = 4000
	yearBuiltMin  = 1950
	yearBuiltMax  = 2024
	lotSizeMin    = 3000
	lotSizeMax    = 15000
	commuteMin    = 5
	commuteMax    = 60

	schoolRatingMin = 4.0
	schoolRatingMax = 10.0

	streetNumberMin = 100
	streetNumberMax = 9999

	poolProbability   = 0.3
	garageProbability = 0.7
	gardenProbability = 0.6
)

// Rand supplies the draws used during generation. Implementations must be
// safe for concurrent use; a Generator is shared across requests.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// lockedRand is a mutex-guarded rand.Rand, the default draw source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // math/rand is fine for mock listing data
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Generator produces batches of mock listings priced by a Predictor.
type Generator struct {
	predictor predict.Predictor
	rand      Rand
	log       zerolog.Logger
}

// NewGenerator creates a generator with a seeded draw source. A zero seed
// selects a time-based seed.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewGenerator(p predict.Predictor, seed int64, logger zerolog.Logger) *Generator {
	return NewGeneratorWithRand(p, newLockedRand(seed), logger)
}

// NewGeneratorWithRand creates a generator with an injected draw source.
// Intended for tests that need scripted draws.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewGeneratorWithRand(p predict.Predictor, r Rand, logger zerolog.Logger) *Generator {
	return &Generator{
		predictor: p,
		rand:      r,
		log:       logger.With().Str("component", "property-generator").Logger(),
	}
}

// Generate produces count listings with sequential IDs starting at 1.
// Every listing is priced through the predictor before it is returned.
func (g *Generator) Generate(count int) []Property {
	start := time.Now()

	// Count policy (defaults, maxima) lives in the pipeline; this guard
	// only keeps a stray negative capacity out of make.
	if count < 0 {
		count = 0
	}

	properties := make([]Property, 0, count)
	for i := 0; i < count; i++ {
		properties = append(properties, g.generateOne(i))
	}

	metrics.RecordPropertiesGenerated(len(properties))
	g.log.Debug().
		Int("count", len(properties)).
		Dur("duration", time.Since(start)).
		Msg("generated listing batch")

	return properties
}

func (g *Generator) generateOne(i int) Property {
	bedrooms := g.intn(bedroomsMin, bedroomsMax)

	// Bathrooms track bedrooms minus at most one, floored at 1.
	bathrooms := bedrooms - g.rand.Intn(2)
	if bathrooms < 1 {
		bathrooms = 1
	}

	p := Property{
		ID:           i + 1,
		ZipCode:      ZipCodes[g.rand.Intn(len(ZipCodes))],
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		SquareFeet:   g.intn(squareFeetMin, squareFeetMax),
		YearBuilt:    g.intn(yearBuiltMin, yearBuiltMax),
		LotSize:      g.intn(lotSizeMin, lotSizeMax),
		PropertyType: "House",
		SchoolRating: round1(schoolRatingMin + g.rand.Float64()*(schoolRatingMax-schoolRatingMin)),
		CommuteTime:  g.intn(commuteMin, commuteMax),
		HasPool:      g.rand.Float64() < poolProbability,
		HasGarage:    g.rand.Float64() < garageProbability,
		HasGarden:    g.rand.Float64() < gardenProbability,
		Address:      fmt.Sprintf("%d %s St", g.intn(streetNumberMin, streetNumberMax), StreetNames[g.rand.Intn(len(StreetNames))]),
		City:         Cities[g.rand.Intn(len(Cities))],
		State:        States[g.rand.Intn(len(States))],
		ImageURL:     ImageURLs[i%len(ImageURLs)],
	}

	p.PredictedPrice = round2(g.predictor.Predict(p.Features()))
	return p
}

// intn draws from the half-open range [min, max).
func (g *Generator) intn(min, max int) int {
	return min + g.rand.Intn(max-min)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
