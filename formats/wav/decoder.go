// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/grainflow/audio"
	"github.com/ik5/grainflow/utils"
)

const pcmFormat = 1

// pcmReader is the part of wav.Decoder used by source, replaceable in tests.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	ints       *goaudio.IntBuffer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.ints.Data) < len(dst) {
		s.ints.Data = make([]int, len(dst))
	}
	s.ints.Data = s.ints.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.ints)
	if err != nil {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}

	// 8-bit WAV is unsigned around 128, every other depth is signed.
	offset := 0
	if s.bitDepth == 8 {
		offset = 128
	}
	for i := range n {
		dst[i] = utils.IntToFloat32(s.ints.Data[i]-offset, s.bitDepth)
	}

	// go-audio reports the end of the data chunk as a short or empty read.
	if n < len(dst) {
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedLayout, err)
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, ErrUnsupportedFormat
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedFormat
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedLayout
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		ints: &goaudio.IntBuffer{
			Format: dec.Format(),
			Data:   make([]int, 4096),
		},
	}, nil
}
