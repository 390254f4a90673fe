// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/grainflow/audio"
	"github.com/ik5/grainflow/utils"
)

// go-mp3 always decodes to interleaved stereo 16-bit little endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmStream is the part of gomp3.Decoder used by source, replaceable in tests.
type pcmStream interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec     pcmStream
	rate    int
	raw     []byte
	pending int // bytes of a split sample carried over to the next read
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.raw) < need {
		raw := make([]byte, need)
		copy(raw, s.raw[:s.pending])
		s.raw = raw
	}
	s.raw = s.raw[:need]

	n, err := s.dec.Read(s.raw[s.pending:])
	n += s.pending

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.raw[i*bytesPerSample:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	s.pending = copy(s.raw, s.raw[samples*bytesPerSample:n])

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3: %w", err)
	}

	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		raw:  make([]byte, 8192),
	}, nil
}
