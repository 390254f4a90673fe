// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/grainflow/audio"
	"github.com/ik5/grainflow/utils"
)

// pcmReader is the part of aiff.Decoder used by source.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec      pcmReader
	rate     int
	channels int
	bitDepth int
	ints     goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.ints.Data) < len(dst) {
		s.ints.Data = make([]int, len(dst))
	}
	s.ints.Data = s.ints.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(&s.ints)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading aiff pcm: %w", err)
	}

	for i := range n {
		dst[i] = utils.IntToFloat32(s.ints.Data[i], s.bitDepth)
	}

	if n < len(dst) {
		return n, io.EOF
	}
	return n, err
}

// Decoder reads AIFF files with 8, 16, 24 or 32 bit samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedLayout
	}

	return &source{
		dec:      dec,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(dec.BitDepth),
		ints:     goaudio.IntBuffer{Format: format},
	}, nil
}
