package utils

import "math"

// RoundToNearest5 rounds a value to the nearest multiple of 5. Upgrade
// prices are quoted in 5-coin steps.
func RoundToNearest5(value float64) int {
	return int(math.Round(value/5.0)) * 5
}

// ClampInt bounds value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampFloat bounds value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
