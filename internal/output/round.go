package output

import (
	"math"

	"github.com/shopspring/decimal"
)

// Wire precision.
const (
	placesMeasure = 2 // Tm, GC%, MW, Tm difference
	placesScore   = 3
)

// round fixes v to places decimals (half away from zero) so the wire format
// does not leak float noise like 56.916000000000004.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return missing
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
