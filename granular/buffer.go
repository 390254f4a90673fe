// SPDX-License-Identifier: EPL-2.0

package granular

import "github.com/ik5/grainflow/utils"

// Buffer is an immutable block of interleaved samples shared by the grains.
// Never modify Samples after handing the buffer to a Synthesizer.
type Buffer struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// NewBuffer copies samples into a new Buffer. A trailing partial frame is dropped.
func NewBuffer(samples []float32, channels, sampleRate int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if channels > MaxNumChannels {
		return nil, ErrTooManyChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	n := len(samples) - len(samples)%channels
	data := make([]float32, n)
	copy(data, samples)

	return &Buffer{Samples: data, Channels: channels, SampleRate: sampleRate}, nil
}

// Frames is the number of whole frames in the buffer.
func (b *Buffer) Frames() int {
	if b == nil || b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Seconds is the playing time of the buffer.
func (b *Buffer) Seconds() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Sample reads channel ch at a fractional frame position with linear
// interpolation. Positions past the last frame hold the last frame.
func (b *Buffer) Sample(pos float64, ch int) float32 {
	frames := b.Frames()
	if frames == 0 {
		return 0
	}
	c := b.Channels
	ch %= c

	if pos <= 0 {
		return b.Samples[ch]
	}
	i := int(pos)
	if i >= frames-1 {
		return b.Samples[(frames-1)*c+ch]
	}

	return utils.LinearInterpolate(b.Samples[i*c+ch], b.Samples[(i+1)*c+ch], float32(pos-float64(i)))
}

// Frame reads every channel at pos into dst, the same way Sample does.
// Channels beyond len(dst) are skipped.
func (b *Buffer) Frame(pos float64, dst []float32) {
	frames := b.Frames()
	if frames == 0 {
		clear(dst)
		return
	}
	c := b.Channels
	dst = dst[:min(len(dst), c)]

	i := int(max(pos, 0))
	if i >= frames-1 {
		copy(dst, b.Samples[(frames-1)*c:])
		return
	}
	t := float32(max(pos, 0) - float64(i))
	cur, next := b.Samples[i*c:], b.Samples[(i+1)*c:]
	for ch := range dst {
		dst[ch] = utils.LinearInterpolate(cur[ch], next[ch], t)
	}
}
