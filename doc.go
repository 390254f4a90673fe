// SPDX-License-Identifier: EPL-2.0

// Package grainflow is a real-time audio engine built from a processing
// graph and a granular synthesizer.
//
// The pieces live in sub-packages:
//   - graph: nodes, edges, topological ordering and the Executor
//   - granular: the grain cloud Synthesizer and its immutable Buffer
//   - nodes: ready-made sources, effects and sinks for the graph
//   - downmix: channel count mapping strategies
//   - dac: the Adaptor that feeds engine frames to an output device
//
// This package ties them to the file decoders. LoadFile reads a WAV, MP3,
// Ogg Vorbis or AIFF file into a granular.Buffer at the engine's rate:
//
//	buf, err := grainflow.LoadFile(ctx, "voice.ogg", 48000, 0)
//	if err != nil {
//		return err
//	}
//	synth := granular.New(granular.Config{SampleRate: 48000})
//	synth.SetBuffer(buf)
package grainflow
