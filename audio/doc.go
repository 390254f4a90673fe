// SPDX-License-Identifier: EPL-2.0

// Package audio holds the pull-based stream primitives used to load sound
// files into memory before playback.
//
// A Source yields interleaved float32 samples. Decoders in the formats
// packages produce Sources; Resampler and Mixer wrap one Source in another
// so they chain:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	rs := audio.NewResampler(src, 48000)
//	mix, _ := audio.NewMixer(rs, 2, downmix.StrategyPanning)
//	samples, err := audio.ReadAll(ctx, mix, 4096)
//
// Registry maps file extensions to decoders so callers can pick one from a
// path with ForPath.
package audio
