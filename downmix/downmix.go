// SPDX-License-Identifier: EPL-2.0

package downmix

import "math"

// Func maps the channels of in onto out. len(in) and len(out) are the
// channel counts; out is overwritten.
type Func func(in, out []float32)

// Simple writes the mean of in to every channel of out. An empty in writes silence.
func Simple(in, out []float32) {
	var avg float32
	if len(in) > 0 {
		var sum float32
		for _, s := range in {
			sum += s
		}
		avg = sum / float32(len(in))
	}

	for i := range out {
		out[i] = avg
	}
}

// Panning spreads in across out so that neighbouring channels keep their
// left-to-right position. Equal channel counts copy the frame.
func Panning(in, out []float32) {
	if passthrough(in, out) {
		return
	}

	nin, nout := len(in), len(out)
	for o := range out {
		po := progress(o, nout)
		var sum float32
		for i, s := range in {
			d := abs32(progress(i, nin) - po)
			sum += s * float32(math.Sqrt(float64(1-d)))
		}
		out[o] = sum
	}

	norm := float32(math.Sqrt(float64(nout)))
	for o := range out {
		out[o] /= norm
	}
}

// PanningFast approximates Panning with a linear weight and a single scale
// factor of cbrt(len(in)/len(out)).
func PanningFast(in, out []float32) {
	if passthrough(in, out) {
		return
	}

	nin, nout := float32(len(in)), float32(len(out))
	for o := range out {
		po := float32(o) / nout
		var sum float32
		for i, s := range in {
			sum += s * (1 - abs32(float32(i)/nin-po))
		}
		out[o] = sum
	}

	div := float32(math.Cbrt(float64(nin / nout)))
	for o := range out {
		out[o] /= div
	}
}

// passthrough handles the cases that need no mixing and reports whether
// out has been fully written.
func passthrough(in, out []float32) bool {
	if len(out) == 0 {
		return true
	}
	if len(in) == 0 {
		clear(out)
		return true
	}
	if len(in) == len(out) {
		copy(out, in)
		return true
	}
	return false
}

// progress is the position of channel i among n channels in [0,1].
// A single channel sits in the middle.
func progress(i, n int) float32 {
	if n <= 1 {
		return 0.5
	}
	return float32(i) / float32(n-1)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
