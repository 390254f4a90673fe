// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"io"
	"sync/atomic"

	"github.com/ik5/grainflow/utils"
)

// FrameSource produces one interleaved frame per call. Both the graph
// executor and the granular synthesizer satisfy it.
type FrameSource interface {
	NextFrame(dst []float32)
}

type sourceBox struct {
	src FrameSource
}

// Adaptor converts frames from a FrameSource to encoded bytes.
//
// Read is meant for a single consumer (the backend's audio thread).
// SetSource and the gain may be changed from any goroutine.
type Adaptor struct {
	format   SampleFormat
	channels int
	frameLen int

	src  atomic.Pointer[sourceBox]
	gain *utils.Gain

	frame  []float32
	frames atomic.Uint64
}

// NewAdaptor returns a silent Adaptor for the given format and channel count.
func NewAdaptor(format SampleFormat, channels int) (*Adaptor, error) {
	if !format.Valid() {
		return nil, ErrUnsupportedFormat
	}
	if channels <= 0 {
		return nil, ErrInvalidConfig
	}

	return &Adaptor{
		format:   format,
		channels: channels,
		frameLen: channels * format.BytesPerSample(),
		gain:     utils.NewGainBounded(1, 0, 1),
		frame:    make([]float32, channels),
	}, nil
}

func (a *Adaptor) Format() SampleFormat { return a.format }
func (a *Adaptor) Channels() int        { return a.channels }

// FrameBytes is the encoded size of one frame.
func (a *Adaptor) FrameBytes() int { return a.frameLen }

// Gain is the output gain, bounded to [0, 1].
func (a *Adaptor) Gain() *utils.Gain { return a.gain }

// Frames is the number of frames produced so far.
func (a *Adaptor) Frames() uint64 { return a.frames.Load() }

// SetSource swaps the frame source. nil silences the stream.
func (a *Adaptor) SetSource(src FrameSource) {
	if src == nil {
		a.src.Store(nil)
		return
	}
	a.src.Store(&sourceBox{src: src})
}

func (a *Adaptor) next() {
	box := a.src.Load()
	if box == nil {
		clear(a.frame)
	} else {
		box.src.NextFrame(a.frame)
	}

	g := a.gain.Value()
	for i, x := range a.frame {
		a.frame[i] = utils.Sanitize(x * g)
	}
	a.frames.Add(1)
}

// Read fills p with as many whole frames as fit and never returns an error
// unless p cannot hold a single frame.
func (a *Adaptor) Read(p []byte) (int, error) {
	n := len(p) / a.frameLen
	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	size := a.format.BytesPerSample()
	off := 0
	for range n {
		a.next()
		for _, x := range a.frame {
			a.format.Encode(p[off:off+size], x)
			off += size
		}
	}
	return off, nil
}

// Render fills dst with whole frames of float samples, bypassing encoding.
// It returns the number of samples written.
func (a *Adaptor) Render(dst []float32) int {
	n := len(dst) / a.channels
	for f := range n {
		a.next()
		copy(dst[f*a.channels:], a.frame)
	}
	return n * a.channels
}
