// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/grainflow/utils"
)

const resamplerChunkFrames = 1024

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass is run over the input first.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames per output frame

	// Interpolation window; output lies between win[1] and win[2] at pos.
	win   [4][]float32
	valid [4]bool
	pos   float64

	chunk   []float32
	chunkAt int
	chunkN  int
	srcEOF  bool
	started bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	ch := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: ch,
		step:     float64(src.SampleRate()) / float64(dstRate),
		chunk:    make([]float32, resamplerChunkFrames*ch),
		state:    make([]float32, ch),
	}
	if r.step > 1 {
		r.lowpass = true
		r.alpha = float32(1 / r.step)
	}
	for i := range r.win {
		r.win[i] = make([]float32, ch)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for r.chunkAt >= r.chunkN {
		if r.srcEOF {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.chunk)
		r.chunkAt, r.chunkN = 0, n-n%r.channels
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("reading resampler source: %w", err)
		}
	}

	copy(dst, r.chunk[r.chunkAt:r.chunkAt+r.channels])
	r.chunkAt += r.channels

	if r.lowpass {
		for c := range dst {
			r.state[c] += r.alpha * (dst[c] - r.state[c])
			dst[c] = r.state[c]
		}
	}
	return true, nil
}

// shift drops win[0] and pulls a new frame into win[3], holding the last
// real frame once the source runs dry.
func (r *Resampler) shift() error {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	copy(r.valid[:], r.valid[1:])
	r.win[3] = first

	ok, err := r.pull(r.win[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[3], r.win[2])
	}
	r.valid[3] = ok
	return nil
}

func (r *Resampler) start() error {
	r.started = true

	// the first frame passes unfiltered and seeds the filter state
	lowpass := r.lowpass
	r.lowpass = false
	ok, err := r.pull(r.win[1])
	r.lowpass = lowpass
	if err != nil || !ok {
		return err
	}
	copy(r.state, r.win[1])
	copy(r.win[0], r.win[1])
	r.valid[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
		}
		r.valid[i] = ok
	}
	return nil
}

// ReadSamples produces frames at the destination rate. len(dst) must be a
// multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.started {
		if err := r.start(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
