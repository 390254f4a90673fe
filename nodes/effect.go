// SPDX-License-Identifier: EPL-2.0

package nodes

import (
	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/graph"
	"github.com/ik5/grainflow/utils"
)

// Multiply outputs the product of its two inputs.
type Multiply struct{}

func NewMultiply() *Multiply { return &Multiply{} }

func (*Multiply) Kind() graph.Kind { return graph.KindEffect }
func (*Multiply) NumInputs() int   { return 2 }
func (*Multiply) NumOutputs() int  { return 1 }

func (*Multiply) Process(_ graph.Clock, in, out []float32) {
	out[0] = in[0] * in[1]
}

// Gain scales its input by a clamped gain.
type Gain struct {
	gain *utils.Gain
}

func NewGain(v float32) *Gain {
	return &Gain{gain: utils.NewGain(v)}
}

// Gain returns the underlying value so bounds can be changed.
func (g *Gain) Gain() *utils.Gain { return g.gain }

func (*Gain) Kind() graph.Kind { return graph.KindEffect }
func (*Gain) NumInputs() int   { return 1 }
func (*Gain) NumOutputs() int  { return 1 }

func (g *Gain) Process(_ graph.Clock, in, out []float32) {
	out[0] = g.gain.Apply(in[0])
}

// PassThrough copies n inputs to n outputs. It is useful as a bus where
// several sources are summed into one port.
type PassThrough struct {
	n int
}

func NewPassThrough(n int) *PassThrough { return &PassThrough{n: max(1, n)} }

func (*PassThrough) Kind() graph.Kind  { return graph.KindEffect }
func (p *PassThrough) NumInputs() int  { return p.n }
func (p *PassThrough) NumOutputs() int { return p.n }

func (*PassThrough) Process(_ graph.Clock, in, out []float32) {
	copy(out, in)
}

// Downmix maps its inputs onto a different number of outputs.
type Downmix struct {
	ins, outs int
	strategy  downmix.Strategy
}

func NewDownmix(ins, outs int, s downmix.Strategy) *Downmix {
	return &Downmix{ins: max(1, ins), outs: max(1, outs), strategy: s}
}

func (*Downmix) Kind() graph.Kind  { return graph.KindEffect }
func (d *Downmix) NumInputs() int  { return d.ins }
func (d *Downmix) NumOutputs() int { return d.outs }

func (d *Downmix) Process(_ graph.Clock, in, out []float32) {
	d.strategy.Apply(in, out)
}
