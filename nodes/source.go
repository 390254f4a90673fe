// SPDX-License-Identifier: EPL-2.0

package nodes

import (
	"math"

	"github.com/ik5/grainflow/granular"
	"github.com/ik5/grainflow/graph"
)

// Constant emits a fixed value.
type Constant struct {
	value atomicFloat32
}

func NewConstant(v float32) *Constant {
	c := &Constant{}
	c.value.Store(v)
	return c
}

func (c *Constant) Value() float32     { return c.value.Load() }
func (c *Constant) SetValue(v float32) { c.value.Store(v) }

func (*Constant) Kind() graph.Kind { return graph.KindSource }
func (*Constant) NumInputs() int   { return 0 }
func (*Constant) NumOutputs() int  { return 1 }

func (c *Constant) Process(_ graph.Clock, _, out []float32) {
	out[0] = c.value.Load()
}

// Sine is a sine oscillator. The phase is kept between cycles so frequency
// changes do not click.
type Sine struct {
	freq  atomicFloat32
	phase float64
}

func NewSine(freq float32) *Sine {
	s := &Sine{}
	s.freq.Store(freq)
	return s
}

func (s *Sine) Frequency() float32        { return s.freq.Load() }
func (s *Sine) SetFrequency(freq float32) { s.freq.Store(freq) }

func (*Sine) Kind() graph.Kind { return graph.KindSource }
func (*Sine) NumInputs() int   { return 0 }
func (*Sine) NumOutputs() int  { return 1 }

func (s *Sine) Process(clk graph.Clock, _, out []float32) {
	out[0] = float32(math.Sin(2 * math.Pi * s.phase))
	if clk.SampleRate <= 0 {
		return
	}
	s.phase += float64(s.freq.Load()) / float64(clk.SampleRate)
	s.phase -= math.Floor(s.phase)
}

// Granular exposes a granular.Synthesizer as a source with one output per
// channel. The synthesizer's channel frame is downmixed onto the outputs
// when the counts differ.
type Granular struct {
	synth    *granular.Synthesizer
	channels int
}

func NewGranular(s *granular.Synthesizer, channels int) *Granular {
	return &Granular{synth: s, channels: max(1, channels)}
}

func (g *Granular) Synthesizer() *granular.Synthesizer { return g.synth }

func (*Granular) Kind() graph.Kind  { return graph.KindSource }
func (*Granular) NumInputs() int    { return 0 }
func (g *Granular) NumOutputs() int { return g.channels }

func (g *Granular) Process(_ graph.Clock, _, out []float32) {
	g.synth.NextFrame(out)
}
