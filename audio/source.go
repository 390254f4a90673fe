// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst and returns the number of float32 values
	// written, not frames. n == 0 with io.EOF means the stream is finished;
	// a final partial read may also carry io.EOF.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
