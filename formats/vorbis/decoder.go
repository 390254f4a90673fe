// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/grainflow/audio"
	"github.com/jfreymuth/oggvorbis"
)

// frameReader is the part of oggvorbis.Reader used by source.
type frameReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec frameReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

// ReadSamples decodes whole frames only; dst is used up to the largest
// multiple of the channel count.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	whole := len(dst) - len(dst)%ch
	if whole == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:whole])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis: %w", err)
	}

	return &source{dec: dec}, nil
}
