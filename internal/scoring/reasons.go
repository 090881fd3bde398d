// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomtom215/homematch/internal/property"
)

// Budget ratios for reasoning copy. Under 90% of budget reads as a deal;
// up to 110% reads as a stretch worth mentioning.
const (
	budgetExcellentRatio = 0.9
	budgetStretchRatio   = 1.1
)

// reasonFallback guarantees reasoning is never empty. With the budget
// clause always present it is effectively unreachable, and the frontend
// depends on that guarantee.
const reasonFallback = "Good match based on your preferences"

// moneyPrinter renders dollar amounts with en-US digit grouping
// ("$1,250,000"). Printers are safe for concurrent use.
var moneyPrinter = message.NewPrinter(language.English)

func formatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%.0f", v)
}

// Explain produces the human-readable reasoning for a listing's score.
//
// Clauses are emitted in a fixed order (budget, bedrooms, school, commute,
// age, amenities, location) and joined with "; ". The exact strings are a
// frontend contract; wording changes must be coordinated.
func (e *Engine) Explain(p property.Property, prefs property.Preferences) string {
	reasons := make([]string, 0, 7)

	price := p.PredictedPrice
	budget := prefs.Budget

	switch {
	case price <= budget && price <= budget*budgetExcellentRatio:
		reasons = append(reasons, fmt.Sprintf("Excellent value at %s, well under your %s budget", formatMoney(price), formatMoney(budget)))
	case price <= budget:
		reasons = append(reasons, fmt.Sprintf("Fits comfortably within your %s budget at %s", formatMoney(budget), formatMoney(price)))
	case price <= budget*budgetStretchRatio:
		reasons = append(reasons, fmt.Sprintf("Slightly above budget at %s, but offers great features", formatMoney(price)))
	default:
		reasons = append(reasons, fmt.Sprintf("Price: %s (above budget)", formatMoney(price)))
	}

	if p.Bedrooms >= prefs.MinBedrooms {
		reasons = append(reasons, fmt.Sprintf("Meets your %d+ bedroom requirement (%d bedrooms)", prefs.MinBedrooms, p.Bedrooms))
	}

	switch {
	case p.SchoolRating >= schoolExcellentRating:
		reasons = append(reasons, fmt.Sprintf("Excellent school rating of %.1f/10", p.SchoolRating))
	case p.SchoolRating >= schoolGoodRating:
		reasons = append(reasons, fmt.Sprintf("Good school rating of %.1f/10", p.SchoolRating))
	}

	switch {
	case p.CommuteTime <= commuteShortMinutes:
		reasons = append(reasons, fmt.Sprintf("Short commute time of %d minutes", p.CommuteTime))
	case p.CommuteTime <= commuteReasonableMinutes:
		reasons = append(reasons, fmt.Sprintf("Reasonable commute time of %d minutes", p.CommuteTime))
	}

	switch age := p.Age(e.now().Year()); {
	case age <= ageVeryModernYears:
		reasons = append(reasons, fmt.Sprintf("Recently built in %d (very modern)", p.YearBuilt))
	case age <= ageModernYears:
		reasons = append(reasons, fmt.Sprintf("Modern home built in %d", p.YearBuilt))
	case age <= ageEstablishedYears:
		reasons = append(reasons, fmt.Sprintf("Established property from %d", p.YearBuilt))
	}

	var amenities []string
	if p.HasPool {
		amenities = append(amenities, "pool")
	}
	if p.HasGarage {
		amenities = append(amenities, "garage")
	}
	if p.HasGarden {
		amenities = append(amenities, "garden")
	}
	if len(amenities) > 0 {
		reasons = append(reasons, "Features: "+strings.Join(amenities, ", "))
	}

	if p.City != "" && p.State != "" {
		reasons = append(reasons, fmt.Sprintf("Location: %s, %s", p.City, p.State))
	}

	if len(reasons) == 0 {
		return reasonFallback
	}
	return strings.Join(reasons, "; ")
}
