package vmath

import (
	"math"

	"github.com/chewxy/math32"
)

// DegToRad converts degrees to radians
// Evaluated as (degrees*Pi)/180 in float32, keep the operation order
func DegToRad(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// RoundInt rounds to the nearest integer, ties away from zero
// Rasterized output depends on this tie rule, do not swap for RoundToEven or truncation
// Saturates to the int32 range and maps NaN to 0, so coordinate deltas always fit in 33 bits
func RoundInt(f float32) int {
	r := math32.Round(f)
	switch {
	case math32.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}

// Abs returns absolute value of integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// NearlyEqual reports whether a and b differ by at most eps
func NearlyEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
