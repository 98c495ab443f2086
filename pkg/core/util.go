package core

import "math"

// Infinity is used as the open upper bound for ray queries
var Infinity = math.Inf(1)

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Clamp restricts x to [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	if x < minVal {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}
