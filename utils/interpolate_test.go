// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLinearInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b, x float32
		want    float32
	}{
		{"start", 1, 3, 0, 1},
		{"end", 1, 3, 1, 3},
		{"middle", 1, 3, 0.5, 2},
		{"negative slope", 1, -1, 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LinearInterpolate(tt.a, tt.b, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("LinearInterpolate(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.x, got, tt.want)
			}
		})
	}
}

func TestReadLinear(t *testing.T) {
	t.Parallel()

	buf := []float32{0, 1, 0.5}

	tests := []struct {
		name string
		buf  []float32
		pos  float64
		want float32
	}{
		{"empty", nil, 1, 0},
		{"first", buf, 0, 0},
		{"exact", buf, 1, 1},
		{"between", buf, 0.5, 0.5},
		{"falling", buf, 1.5, 0.75},
		{"last", buf, 2, 0.5},
		{"past end holds", buf, 7, 0.5},
		{"negative holds", buf, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReadLinear(tt.buf, tt.pos)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("ReadLinear(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"at start", 0, 1, 2, 3, 0, 1, 0.001},
		{"at end", 0, 1, 2, 3, 1, 2, 0.001},
		{"linear data", 1, 2, 3, 4, 0.25, 2.25, 0.01},
		{"negative values", -1, -0.5, 0.5, 1, 0.5, 0, 0.1},
		{"zero values", 0, 0, 0, 0, 0.5, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			diff := float32(math.Abs(float64(got - tt.want)))
			if diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (tolerance %v, diff %v)",
					got, tt.want, tt.tolerance, diff)
			}
		})
	}
}

func TestReadLinear_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	buf := make([]float32, 1024)
	allocs := testing.AllocsPerRun(1000, func() {
		_ = ReadLinear(buf, 511.25)
	})

	if allocs > 0 {
		t.Errorf("ReadLinear allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32

	b.ReportAllocs()

	for b.Loop() {
		result = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	}

	_ = result
}
