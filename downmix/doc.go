// SPDX-License-Identifier: EPL-2.0

// Package downmix maps one frame of N channels onto M channels.
//
// Three strategies are available:
//   - Simple: the arithmetic mean of the input, written to every output
//   - Panning: each input contributes to each output weighted by
//     sqrt(1 - distance) where distance is how far apart the two channels sit
//     across the stereo field, normalised by sqrt(M)
//   - PanningFast: the same curve without the square root, scaled by
//     cbrt(N/M)
//
// All functions write into a caller-owned output slice and never allocate,
// so they can run on the audio callback.
//
//	in := []float32{0.2, 0.4}
//	out := make([]float32, 1)
//	downmix.Simple(in, out) // out[0] == 0.3
package downmix
