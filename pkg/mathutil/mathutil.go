// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/substat-optimizer/pkg/constants"
)

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds val to [lower, upper]. The lower bound wins when the bounds cross.
func Clamp(val, lower, upper float64) float64 {
	return Max(Min(val, upper), lower)
}

// WithinTolerance checks if two values are strictly closer than tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) < tolerance
}

// CalculatePercentage calculates what percentage value is of total. A zero
// total yields zero rather than an infinity.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// IsFinite reports whether val is neither NaN nor an infinity
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
