package core

import "math"

const defaultEpsilon = 1e-12

// NanosPerSecond is the resolution of canonical time keys.
const NanosPerSecond = 1e9

// TimeDecimals is the number of decimal places (seconds) kept when time
// values are compared or joined.
const TimeDecimals = 9

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Round rounds x to the given number of decimal places, halves away from zero.
func Round(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

// TimeKey maps a time in seconds to its canonical integer key in nanoseconds.
// Two times that agree to 9 decimal places share a key.
func TimeKey(t float64) int64 {
	return int64(math.Round(t * NanosPerSecond))
}

// KeyTime is the inverse of TimeKey.
func KeyTime(k int64) float64 {
	return float64(k) / NanosPerSecond
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
