package enrich

import "math"

// baseValue is the monetary anchor for the estimated-value score.
const baseValue = 2500.0

// EstimatedValue converts a provider rating (0 meaning unrated) into a
// monetary score: baseValue scaled by rating/5, or by 0.5 when unrated.
func EstimatedValue(rating float64) int {
	multiplier := 0.5
	if rating > 0 {
		multiplier = rating / 5.0
	}
	return int(math.Round(baseValue * multiplier))
}

// PriorityScore ranks a lead by proximity bucket plus a rating bonus.
func PriorityScore(rating, distanceKM float64) float64 {
	var priority float64
	switch {
	case distanceKM < 0.2:
		priority = 100
	case distanceKM < 0.5:
		priority = 80
	case distanceKM < 1.0:
		priority = 60
	case distanceKM < 2.0:
		priority = 40
	}
	if rating > 0 {
		priority += rating * 20
	}
	return priority
}

// businessTypeLabels maps provider category tags to display labels.
const defaultBusinessType = "Business"

var businessTypeLabels = map[string]string{
	"restaurant":   "Restaurant",
	"food":         "Food & Dining",
	"store":        "Retail Store",
	"beauty_salon": "Beauty Salon",
	"gym":          "Fitness",
	"car_repair":   "Auto Service",
	"lawyer":       "Legal",
	"dentist":      "Healthcare",
}

// BusinessTypeLabel resolves the first matching category tag to its
// display label, defaulting to "Business".
func BusinessTypeLabel(types []string) string {
	for _, t := range types {
		if label, ok := businessTypeLabels[t]; ok {
			return label
		}
	}
	return defaultBusinessType
}
