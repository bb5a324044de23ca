package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
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

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FirstNonFinite returns the index of the first NaN or Inf element in data,
// or -1 when every element is finite.
func FirstNonFinite(data []float64) int {
	for i, v := range data {
		if !IsFinite(v) {
			return i
		}
	}
	return -1
}

// SumAbs returns the sum of absolute values of data.
func SumAbs(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += math.Abs(v)
	}
	return sum
}
