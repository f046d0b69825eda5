package mathutil

import "math"

func LimitFloat64(v float64, min, max float64) float64 {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}
func LimitInt(v int, min, max int) int {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

// Limits v to [0,1]. NaN maps to zero.
func Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return LimitFloat64(v, 0, 1)
}

func Biggest(a, b int) int {
	if a > b {
		return a
	}
	return b
}
