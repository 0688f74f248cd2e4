package utils

import (
	"math"
	"strconv"
	"strings"
)

// TruncateDecimals floors val to the given number of fractional digits.
// Floor, not round-to-nearest: the result must never exceed the free
// balance it was derived from.
func TruncateDecimals(val float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Floor(val*factor) / factor
}

// RoundToStep floors qty down to a whole multiple of step. The caller
// guarantees step > 0.
func RoundToStep(qty float64, step float64) float64 {
	return math.Floor(qty/step) * step
}

// StepDecimals derives how many fractional digits are significant in a
// step size (0.001 -> 3, 1.0 -> 0) from its fixed-precision string form
// with trailing zeros stripped.
func StepDecimals(step float64) int {
	s := strings.TrimRight(strconv.FormatFloat(step, 'f', 10, 64), "0")
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
