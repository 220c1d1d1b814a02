// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/reward-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ClampResult reports which bound, if any, Clamp applied.
type ClampResult string

const (
	ClampNone ClampResult = "none"
	ClampMin  ClampResult = "min"
	ClampMax  ClampResult = "max"
)

// Clamp restricts val to [lower, upper]. The bounds are checked in order,
// lower first, so a value below lower is never compared with upper.
func Clamp(val, lower, upper float64) (float64, ClampResult) {
	if val < lower {
		return lower, ClampMin
	}
	if val > upper {
		return upper, ClampMax
	}
	return val, ClampNone
}

// ToPercentage converts a fraction into percentage points.
func ToPercentage(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
