// SPDX-License-Identifier: EPL-2.0

package graph

import "fmt"

// Kind classifies a node by where it sits in the signal flow.
type Kind uint8

const (
	// KindSource produces samples without inputs.
	KindSource Kind = iota
	// KindEffect transforms inputs into outputs.
	KindEffect
	// KindSink consumes inputs and produces no outputs.
	KindSink
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindEffect:
		return "effect"
	case KindSink:
		return "sink"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Clock is the per-cycle context handed to every node. The executor owns it
// and advances Cycle once per processed frame.
type Clock struct {
	Cycle      uint64
	SampleRate int
}

// Seconds is the time of the current cycle since the executor started.
func (c Clock) Seconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.Cycle) / float64(c.SampleRate)
}

// Node is a processing unit with a fixed number of input and output ports.
//
// Process is called from the audio callback once per cycle. in holds one
// value per input port (the sum of every connection into that port, zero
// when unconnected); out has one slot per output port, zeroed before the
// call. Implementations must not block, allocate or perform I/O, and must
// only depend on in, clk and their own retained state.
type Node interface {
	Kind() Kind
	NumInputs() int
	NumOutputs() int
	Process(clk Clock, in, out []float32)
}

// Outlet is a sink whose inputs form the frame returned by
// Executor.NextFrame: input port i feeds channel i.
type Outlet interface {
	Node
	Outlet()
}

// NodeID identifies a node inside one Graph. The generation makes IDs of
// removed nodes stale even after their slot is reused. The zero value never
// refers to a node.
type NodeID struct {
	index uint32
	gen   uint32
}

func (id NodeID) Index() int         { return int(id.index) }
func (id NodeID) Generation() uint32 { return id.gen }
func (id NodeID) IsZero() bool       { return id.gen == 0 }

func (id NodeID) String() string {
	return fmt.Sprintf("%d#%d", id.index, id.gen)
}
