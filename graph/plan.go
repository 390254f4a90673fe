// SPDX-License-Identifier: EPL-2.0

package graph

import "fmt"

type step struct {
	id     NodeID
	node   Node
	in     []float32
	out    []float32
	inbox  []int // indexes into Plan.conns
	outbox []int
	outlet bool
}

// Plan is a compiled, self-contained snapshot of a graph. It owns its
// connection values and scratch buffers, so a new plan can be built while
// an older one is still running.
type Plan struct {
	version uint64
	steps   []step
	conns   []Connection
	outlets []int
}

// Compile freezes the current topology into a Plan.
func (g *Graph) Compile() *Plan {
	order := g.Order()

	p := &Plan{
		version: g.version,
		steps:   make([]step, len(order)),
		conns:   make([]Connection, len(g.edges)),
	}

	pos := make(map[NodeID]int, len(order))
	for i, id := range order {
		n := g.slots[id.index].node
		_, outlet := n.(Outlet)
		p.steps[i] = step{
			id:     id,
			node:   n,
			in:     make([]float32, n.NumInputs()),
			out:    make([]float32, n.NumOutputs()),
			outlet: outlet,
		}
		pos[id] = i
		if outlet {
			p.outlets = append(p.outlets, i)
		}
	}

	for i, e := range g.edges {
		p.conns[i] = Connection{FromPort: e.conn.FromPort, ToPort: e.conn.ToPort}
		from, to := &p.steps[pos[e.from]], &p.steps[pos[e.to]]
		from.outbox = append(from.outbox, i)
		to.inbox = append(to.inbox, i)
	}

	return p
}

// Version is the graph version the plan was compiled from.
func (p *Plan) Version() uint64 { return p.version }

// Order lists the node IDs in the order they run.
func (p *Plan) Order() []NodeID {
	ids := make([]NodeID, len(p.steps))
	for i := range p.steps {
		ids[i] = p.steps[i].id
	}
	return ids
}

// Connection returns the state of the i-th connection, in graph edge order.
func (p *Plan) Connection(i int) Connection { return p.conns[i] }

// run executes one cycle. An input that was not produced this cycle means
// the plan is corrupt and run panics.
func (p *Plan) run(clk Clock) {
	for i := range p.conns {
		p.conns[i].Produced = false
	}

	for i := range p.steps {
		s := &p.steps[i]

		clear(s.in)
		for _, ci := range s.inbox {
			c := &p.conns[ci]
			if !c.Produced {
				panic(fmt.Sprintf("graph: node %v read unproduced input port %d", s.id, c.ToPort))
			}
			s.in[c.ToPort] += c.Data
		}

		clear(s.out)
		s.node.Process(clk, s.in, s.out)

		for _, ci := range s.outbox {
			c := &p.conns[ci]
			c.Data = s.out[c.FromPort]
			c.Produced = true
		}
	}
}

// collect sums the inputs of every outlet into dst by channel.
func (p *Plan) collect(dst []float32) {
	clear(dst)
	for _, i := range p.outlets {
		in := p.steps[i].in
		for ch := range min(len(in), len(dst)) {
			dst[ch] += in[ch]
		}
	}
}
