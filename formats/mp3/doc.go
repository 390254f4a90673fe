// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III files into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// interleaved stereo at the stream's native rate:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// A sample split across two reads of the underlying stream is carried
// over, so ReadSamples may be called with any destination length.
package mp3
