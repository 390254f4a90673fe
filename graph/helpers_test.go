// SPDX-License-Identifier: EPL-2.0

package graph

// constNode emits the same value on every output.
type constNode struct {
	value float32
	outs  int
}

func (n *constNode) Kind() Kind      { return KindSource }
func (n *constNode) NumInputs() int  { return 0 }
func (n *constNode) NumOutputs() int { return n.outs }
func (n *constNode) Process(_ Clock, _, out []float32) {
	for i := range out {
		out[i] = n.value
	}
}

// counterNode emits the cycle number it was run in.
type counterNode struct{}

func (counterNode) Kind() Kind      { return KindSource }
func (counterNode) NumInputs() int  { return 0 }
func (counterNode) NumOutputs() int { return 1 }
func (counterNode) Process(clk Clock, _, out []float32) {
	out[0] = float32(clk.Cycle)
}

// affineNode computes in*scale + offset on a single port and records what it saw.
type affineNode struct {
	scale, offset float32
	seen          float32
}

func (n *affineNode) Kind() Kind      { return KindEffect }
func (n *affineNode) NumInputs() int  { return 1 }
func (n *affineNode) NumOutputs() int { return 1 }
func (n *affineNode) Process(_ Clock, in, out []float32) {
	n.seen = in[0]
	out[0] = in[0]*n.scale + n.offset
}

// sinkNode records its inputs and exposes them as an outlet.
type sinkNode struct {
	ins  int
	last []float32
}

func newSink(ins int) *sinkNode { return &sinkNode{ins: ins, last: make([]float32, ins)} }

func (n *sinkNode) Kind() Kind      { return KindSink }
func (n *sinkNode) NumInputs() int  { return n.ins }
func (n *sinkNode) NumOutputs() int { return 0 }
func (n *sinkNode) Outlet()         {}
func (n *sinkNode) Process(_ Clock, in, _ []float32) {
	copy(n.last, in)
}
