// Package format renders monetary and percentage values for display.
package format

import (
	"math"

	"github.com/iwvelando/reward-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// RoublesSuffix follows every amount printed by Currency.
const RoublesSuffix = " руб."

// exact returns the full binary value of v as a decimal, with no
// intermediate rounding to the shortest representation.
func exact(v float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(v, math.MinInt32)
}

// Fixed returns amount with exactly two decimal places and no grouping
// (e.g., "40000.00"). The exact binary value is rounded, ties to even.
func Fixed(amount float64) string {
	return exact(amount).StringFixedBank(2)
}

// Currency returns a rouble amount for display (e.g., "40000.00 руб.").
func Currency(amount float64) string {
	return Fixed(amount) + RoublesSuffix
}

// Percent renders a fraction as percentage points with two decimals and a
// percent sign (0.1 becomes "10.00%").
func Percent(fraction float64) string {
	return Fixed(mathutil.ToPercentage(fraction)) + "%"
}

// Coefficient renders a multiplier with six decimals, the fixed notation
// used in the coefficient summary line (e.g., "0.800000").
func Coefficient(value float64) string {
	return exact(value).StringFixedBank(6)
}
