// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate blends a and b by x (0 <= x <= 1).
func LinearInterpolate(a, b, x float32) float32 {
	return a + (b-a)*x
}

// CubicInterpolate performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0 and y3 are the neighbouring samples.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// ReadLinear reads buf at a fractional index. Indexes before the start read
// buf[0]; the last sample is held past the end. An empty buf reads 0.
func ReadLinear(buf []float32, pos float64) float32 {
	n := len(buf)
	if n == 0 {
		return 0
	}
	if pos <= 0 {
		return buf[0]
	}
	i := int(pos)
	if i >= n-1 {
		return buf[n-1]
	}
	return LinearInterpolate(buf[i], buf[i+1], float32(pos-float64(i)))
}
