package geo

import "math"

// compare a and b and consider them equal if
// difference is less than precision e (e.g. e=0.001)
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// TruncateDecimals truncates floats to keep up to 3 digits after decimal, to avoid issues with floats on different machines.
// Floats from 2^52 up have no fractional part and come back unchanged.
func TruncateDecimals(v float64) float64 {
	if math.Abs(v) >= 1<<52 {
		return v
	}
	t := math.Trunc(v*1000) / 1000
	if t == 0 {
		return 0
	}
	return t
}
