package pricing

import "math"

// Price computes the automatic scrap offer for a vehicle: kerb weight times
// the configured rate per kilogram, rounded to whole pence. The second
// return is false when auto-pricing is not possible (no usable weight or
// rate), which routes the quote to manual review.
func Price(weightKg, ratePerKg float64) (float64, bool) {
	if weightKg <= 0 || ratePerKg <= 0 {
		return 0, false
	}
	return math.Round(weightKg*ratePerKg*100) / 100, true
}
