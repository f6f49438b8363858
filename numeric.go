package chart

import "math"

// RoundToNextSignificant rounds x to its leading significant digit,
// e.g. 0.0043 becomes 0.004 and 137 becomes 100.
// Zero, NaN and infinities are returned unchanged.
func RoundToNextSignificant(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	d := math.Ceil(math.Log10(math.Abs(x)))
	pw := 1 - int(d)
	magnitude := math.Pow10(pw)
	shifted := math.Round(x * magnitude)
	return shifted / magnitude
}

// Decimals returns the number of decimal places needed to show x
// meaningfully. It returns 0 for zero, NaN and infinite input and never
// returns a negative count.
func Decimals(x float64) int {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	i := math.Abs(RoundToNextSignificant(x))
	if math.IsInf(i, 0) || i == 0 {
		return 0
	}

	n := int(math.Ceil(-math.Log10(i))) + 2
	if n < 0 {
		return 0
	}
	return n
}

// NextUp returns the smallest float64 strictly greater than x.
// NaN and infinities are returned unchanged.
func NextUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Nextafter(x, math.Inf(1))
}
