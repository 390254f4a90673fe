// SPDX-License-Identifier: EPL-2.0

// Package dac moves frames from the engine to an output device.
//
// The Adaptor is the bridge: a backend pulls bytes from it as an io.Reader
// and the Adaptor pulls whole frames from a FrameSource (an executor or a
// synthesizer), applies the output gain and encodes each sample in the
// stream's SampleFormat. Reads never block, never allocate and never fail;
// without a source the stream is silent and NaN samples come out as zero.
//
// Backends:
//   - oto: the system audio device via github.com/ebitengine/oto/v3
//     (not available when built with the headless tag)
//   - headless: pulls the stream on a ticker and discards it
//   - wav: pulls the stream on a ticker and writes a 16-bit WAV file
//
// Open validates a StreamConfig and starts nothing; configuration errors
// surface before any audio is produced.
package dac
