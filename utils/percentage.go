// SPDX-License-Identifier: EPL-2.0

package utils

// Percentage is a fraction constrained to [0,1].
type Percentage float32

// NewPercentage clamps v into [0,1]. NaN maps to 0.
func NewPercentage(v float32) Percentage {
	if v != v {
		return 0
	}
	return Percentage(Clamp(v, 0, 1))
}

func (p Percentage) Float32() float32 { return float32(p) }

// Of returns the index p of the way through n items, rounded down and
// kept within [0,n].
func (p Percentage) Of(n int) int {
	return Clamp(int(float32(p)*float32(n)), 0, n)
}
