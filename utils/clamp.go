// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [lo, hi].
func Clamp[T ~float32 | ~float64 | ~int | ~int64](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sanitize maps NaN to 0 and clamps x to the nominal sample range [-1, 1].
func Sanitize(x float32) float32 {
	if x != x {
		return 0
	}
	return Clamp(x, -1, 1)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
