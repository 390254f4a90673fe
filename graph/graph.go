// SPDX-License-Identifier: EPL-2.0

package graph

// Connection is a single-value link from an output port to an input port.
// Produced tells whether the upstream node has written Data in the current
// cycle.
type Connection struct {
	FromPort int
	ToPort   int
	Data     float32
	Produced bool
}

// Edge describes a connection between two nodes of a Graph.
type Edge struct {
	From     NodeID
	FromPort int
	To       NodeID
	ToPort   int
}

type slot struct {
	node Node
	gen  uint32
	// seq is the insertion sequence, used to break ordering ties.
	seq uint64
}

type edge struct {
	from, to NodeID
	conn     Connection
}

// Graph owns a set of nodes and the connections between their ports.
// The connection set is always acyclic.
type Graph struct {
	slots []slot
	free  []uint32
	edges []edge
	seq   uint64
	live  int

	order      []NodeID
	orderValid bool
	version    uint64
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode inserts n and returns its identity. Removed slots are reused with
// a bumped generation.
func (g *Graph) AddNode(n Node) NodeID {
	if n == nil {
		panic(ErrNilNode)
	}

	g.seq++
	var idx uint32
	if k := len(g.free); k > 0 {
		idx = g.free[k-1]
		g.free = g.free[:k-1]
	} else {
		idx = uint32(len(g.slots))
		g.slots = append(g.slots, slot{})
	}

	s := &g.slots[idx]
	s.gen++
	s.node = n
	s.seq = g.seq
	g.live++
	g.invalidate()

	return NodeID{index: idx, gen: s.gen}
}

// RemoveNode deletes the node and every connection touching it.
func (g *Graph) RemoveNode(id NodeID) error {
	s, err := g.slot(id)
	if err != nil {
		return err
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.from != id && e.to != id {
			kept = append(kept, e)
		}
	}
	clear(g.edges[len(kept):])
	g.edges = kept

	s.node = nil
	g.free = append(g.free, id.index)
	g.live--
	g.invalidate()

	return nil
}

// Connect links output port fromPort of from to input port toPort of to.
// Connecting a pair of ports that is already linked replaces the old
// connection. The graph is unchanged when an error is returned.
func (g *Graph) Connect(from NodeID, fromPort int, to NodeID, toPort int) error {
	src, err := g.slot(from)
	if err != nil {
		return err
	}
	dst, err := g.slot(to)
	if err != nil {
		return err
	}

	if n := src.node.NumOutputs(); fromPort < 0 || fromPort >= n {
		return &PortIndexError{Node: from, Dir: Output, Port: fromPort, Arity: n}
	}
	if n := dst.node.NumInputs(); toPort < 0 || toPort >= n {
		return &PortIndexError{Node: to, Dir: Input, Port: toPort, Arity: n}
	}

	conn := Connection{FromPort: fromPort, ToPort: toPort}
	if i := g.findEdge(from, fromPort, to, toPort); i >= 0 {
		g.edges[i].conn = conn
		g.invalidate()
		return nil
	}

	if from == to || g.reaches(to, from) {
		return &CycleError{From: from, To: to}
	}

	g.edges = append(g.edges, edge{from: from, to: to, conn: conn})
	g.invalidate()

	return nil
}

// Disconnect removes the connection between the two ports.
func (g *Graph) Disconnect(from NodeID, fromPort int, to NodeID, toPort int) error {
	i := g.findEdge(from, fromPort, to, toPort)
	if i < 0 {
		return ErrEdgeNotFound
	}

	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	g.invalidate()

	return nil
}

// Node returns the node registered under id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	s, err := g.slot(id)
	if err != nil {
		return nil, false
	}
	return s.node, true
}

// Contains reports whether id refers to a live node.
func (g *Graph) Contains(id NodeID) bool {
	_, err := g.slot(id)
	return err == nil
}

// Len is the number of live nodes.
func (g *Graph) Len() int { return g.live }

// Edges returns a copy of all connections in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{From: e.from, FromPort: e.conn.FromPort, To: e.to, ToPort: e.conn.ToPort}
	}
	return out
}

// Connections returns the connections leaving id.
func (g *Graph) Connections(id NodeID) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.from == id {
			out = append(out, Edge{From: e.from, FromPort: e.conn.FromPort, To: e.to, ToPort: e.conn.ToPort})
		}
	}
	return out
}

// Version changes on every topology edit.
func (g *Graph) Version() uint64 { return g.version }

func (g *Graph) slot(id NodeID) (*slot, error) {
	if id.IsZero() || int(id.index) >= len(g.slots) {
		return nil, ErrNodeNotFound
	}
	s := &g.slots[id.index]
	if s.gen != id.gen || s.node == nil {
		return nil, ErrNodeNotFound
	}
	return s, nil
}

func (g *Graph) findEdge(from NodeID, fromPort int, to NodeID, toPort int) int {
	for i, e := range g.edges {
		if e.from == from && e.to == to && e.conn.FromPort == fromPort && e.conn.ToPort == toPort {
			return i
		}
	}
	return -1
}

func (g *Graph) invalidate() {
	g.orderValid = false
	g.version++
}
