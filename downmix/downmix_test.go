// SPDX-License-Identifier: EPL-2.0

package downmix

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func TestSimple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float32
		nout int
		want []float32
	}{
		{"stereo to mono", []float32{0.2, 0.4}, 1, []float32{0.3}},
		{"quad to stereo", []float32{1, 0, 0, -1}, 2, []float32{0, 0}},
		{"mono to stereo", []float32{0.5}, 2, []float32{0.5, 0.5}},
		{"empty input is silence", nil, 2, []float32{0, 0}},
		{"no output", []float32{1}, 0, []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := make([]float32, tt.nout)
			for i := range out {
				out[i] = 99
			}
			Simple(tt.in, out)

			for i := range tt.want {
				if !almostEqual(out[i], tt.want[i]) {
					t.Errorf("Simple(%v)[%d] = %v, want %v", tt.in, i, out[i], tt.want[i])
				}
			}
		})
	}
}

// TestSimpleOrderIndependent checks the mean does not depend on channel order.
func TestSimpleOrderIndependent(t *testing.T) {
	t.Parallel()

	a := []float32{0.1, -0.7, 0.3}
	b := []float32{0.3, 0.1, -0.7}
	outA := make([]float32, 1)
	outB := make([]float32, 1)

	Simple(a, outA)
	Simple(b, outB)

	if !almostEqual(outA[0], outB[0]) {
		t.Errorf("Simple not order independent: %v vs %v", outA[0], outB[0])
	}
}

func TestPanning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float32
		nout int
		want []float32
	}{
		{"equal counts copy", []float32{0.1, 0.2}, 2, []float32{0.1, 0.2}},
		{"stereo to mono", []float32{1, 1}, 1, []float32{float32(2 * math.Sqrt(0.5))}},
		{"mono to stereo", []float32{1}, 2, []float32{0.5, 0.5}},
		{"hard left stays left", []float32{1, 0, 0}, 2, []float32{
			float32(1 / math.Sqrt(2)),
			0,
		}},
		{"empty input is silence", nil, 3, []float32{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := make([]float32, tt.nout)
			Panning(tt.in, out)

			for i := range tt.want {
				if !almostEqual(out[i], tt.want[i]) {
					t.Errorf("Panning(%v)[%d] = %v, want %v", tt.in, i, out[i], tt.want[i])
				}
			}
		})
	}
}

func TestPanningFast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float32
		nout int
		want []float32
	}{
		{"equal counts copy", []float32{0.1, 0.2}, 2, []float32{0.1, 0.2}},
		{"stereo to mono", []float32{1, 1}, 1, []float32{float32(1.5 / math.Cbrt(2))}},
		{"empty input is silence", nil, 2, []float32{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := make([]float32, tt.nout)
			PanningFast(tt.in, out)

			for i := range tt.want {
				if !almostEqual(out[i], tt.want[i]) {
					t.Errorf("PanningFast(%v)[%d] = %v, want %v", tt.in, i, out[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"simple", StrategySimple, false},
		{"Panning", StrategyPanning, false},
		{" panning-fast ", StrategyPanningFast, false},
		{"surround", StrategySimple, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("ParseStrategy(%q) err = %v, want ErrUnknownStrategy", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
			if got.String() != strategyNames[tt.want] {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestStrategyApplyMatchesFunc(t *testing.T) {
	t.Parallel()

	in := []float32{0.9, -0.2, 0.4, 0.1, -0.5}
	for _, s := range []Strategy{StrategySimple, StrategyPanning, StrategyPanningFast} {
		a := make([]float32, 2)
		b := make([]float32, 2)
		s.Apply(in, a)
		s.Func()(in, b)
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%v: Apply and Func differ at %d: %v vs %v", s, i, a[i], b[i])
			}
		}
	}
}

func TestDownmix_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	in := make([]float32, 8)
	out := make([]float32, 2)

	for _, s := range []Strategy{StrategySimple, StrategyPanning, StrategyPanningFast} {
		allocs := testing.AllocsPerRun(100, func() {
			s.Apply(in, out)
		})
		if allocs > 0 {
			t.Errorf("%v allocated %v times, want 0", s, allocs)
		}
	}
}

func BenchmarkPanning(b *testing.B) {
	in := make([]float32, 16)
	out := make([]float32, 2)
	for i := range in {
		in[i] = float32(i) / 16
	}

	b.ReportAllocs()

	for b.Loop() {
		Panning(in, out)
	}
}

func BenchmarkPanningFast(b *testing.B) {
	in := make([]float32, 16)
	out := make([]float32, 2)
	for i := range in {
		in[i] = float32(i) / 16
	}

	b.ReportAllocs()

	for b.Loop() {
		PanningFast(in, out)
	}
}
