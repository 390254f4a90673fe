// SPDX-License-Identifier: EPL-2.0

package nodes

import (
	"sync/atomic"

	"github.com/ik5/grainflow/graph"
)

// Output is the terminal sink of a graph: its input ports are the channels
// returned by graph.Executor.NextFrame.
type Output struct {
	channels int
}

func NewOutput(channels int) *Output { return &Output{channels: max(1, channels)} }

func (*Output) Kind() graph.Kind { return graph.KindSink }
func (o *Output) NumInputs() int { return o.channels }
func (*Output) NumOutputs() int  { return 0 }
func (*Output) Outlet()          {}

func (*Output) Process(graph.Clock, []float32, []float32) {}

// Record stores incoming frames in a buffer allocated up front. Frames
// arriving after the buffer is full are dropped.
type Record struct {
	channels int
	frames   int
	cur      atomic.Pointer[take]
	dropped  atomic.Uint64
}

// take is one recording. Samples below written are never rewritten.
type take struct {
	data    []float32
	written atomic.Int64 // samples, published after the frame is stored
}

// NewRecord reserves room for frames frames of channels samples.
func NewRecord(channels, frames int) *Record {
	r := &Record{channels: max(1, channels), frames: max(0, frames)}
	r.cur.Store(r.newTake())
	return r
}

func (r *Record) newTake() *take {
	return &take{data: make([]float32, r.channels*r.frames)}
}

func (*Record) Kind() graph.Kind { return graph.KindSink }
func (r *Record) NumInputs() int { return r.channels }
func (*Record) NumOutputs() int  { return 0 }

func (r *Record) Process(_ graph.Clock, in, _ []float32) {
	t := r.cur.Load()
	n := int(t.written.Load())
	if n+r.channels > len(t.data) {
		r.dropped.Add(1)
		return
	}
	copy(t.data[n:n+r.channels], in)
	t.written.Store(int64(n + r.channels))
}

// Samples returns a copy of the interleaved samples recorded so far.
func (r *Record) Samples() []float32 {
	t := r.cur.Load()
	n := int(t.written.Load())
	out := make([]float32, n)
	copy(out, t.data[:n])
	return out
}

// Frames is the number of frames recorded.
func (r *Record) Frames() int { return int(r.cur.Load().written.Load()) / r.channels }

// Dropped counts frames that did not fit, across resets.
func (r *Record) Dropped() uint64 { return r.dropped.Load() }

// Full reports whether no more frames fit.
func (r *Record) Full() bool {
	t := r.cur.Load()
	return int(t.written.Load())+r.channels > len(t.data)
}

// Reset starts a new, empty recording. The previous one is left to readers
// that still hold it; the audio side picks up the new one on its next cycle.
func (r *Record) Reset() { r.cur.Store(r.newTake()) }
