// SPDX-License-Identifier: EPL-2.0

package utils

// TriangleEnvelope returns the amplitude of a symmetric triangle window at
// progress p: 0 at p=0, 1 at p=0.5 and 0 again at p=1.
// Input outside [0,1] (and NaN) is treated as the nearest edge, so the result
// is always within [0,1].
func TriangleEnvelope(p float32) float32 {
	if p != p || p <= 0 || p >= 1 {
		return 0
	}
	if p < 0.5 {
		return 2 * p
	}
	return max(2-2*p, 0)
}
