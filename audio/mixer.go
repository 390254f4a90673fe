// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/grainflow/downmix"
)

const mixerChunkFrames = 1024

// Mixer maps every frame of a Source onto a different channel count using
// a downmix strategy.
type Mixer struct {
	src      Source
	in       []float32
	inCh     int
	outCh    int
	strategy downmix.Strategy
}

// NewMixer returns a Mixer producing channels outputs per frame.
func NewMixer(src Source, channels int, strategy downmix.Strategy) (*Mixer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return &Mixer{
		src:      src,
		in:       make([]float32, mixerChunkFrames*src.Channels()),
		inCh:     src.Channels(),
		outCh:    channels,
		strategy: strategy,
	}, nil
}

func (m *Mixer) SampleRate() int { return m.src.SampleRate() }
func (m *Mixer) Channels() int   { return m.outCh }

func (m *Mixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with whole output frames. len(dst) must be a
// multiple of Channels.
func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.outCh != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/m.outCh, len(m.in)/m.inCh)
	n, err := m.src.ReadSamples(m.in[:frames*m.inCh])
	got := n / m.inCh

	for f := range got {
		m.strategy.Apply(m.in[f*m.inCh:(f+1)*m.inCh], dst[f*m.outCh:(f+1)*m.outCh])
	}

	return got * m.outCh, err
}
