// SPDX-License-Identifier: EPL-2.0

package graph

import "slices"

// Order returns the nodes in execution order: every node comes after all of
// its upstream nodes, and nodes that could run in either order keep the
// order in which they were added. The result is cached until the next edit.
func (g *Graph) Order() []NodeID {
	if !g.orderValid {
		g.order = g.topoSort(g.order[:0])
		g.orderValid = true
	}
	return slices.Clone(g.order)
}

// topoSort is Kahn's algorithm with the ready set kept sorted by insertion
// sequence.
func (g *Graph) topoSort(dst []NodeID) []NodeID {
	indeg := make([]int, len(g.slots))
	for _, e := range g.edges {
		indeg[e.to.index]++
	}

	var ready []NodeID
	for i := range g.slots {
		s := &g.slots[i]
		if s.node != nil && indeg[i] == 0 {
			ready = g.insertReady(ready, NodeID{index: uint32(i), gen: s.gen})
		}
	}

	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		dst = append(dst, id)

		for _, e := range g.edges {
			if e.from != id {
				continue
			}
			indeg[e.to.index]--
			if indeg[e.to.index] == 0 {
				ready = g.insertReady(ready, e.to)
			}
		}
	}

	return dst
}

func (g *Graph) insertReady(ready []NodeID, id NodeID) []NodeID {
	seq := g.slots[id.index].seq
	i, _ := slices.BinarySearchFunc(ready, seq, func(r NodeID, target uint64) int {
		rs := g.slots[r.index].seq
		switch {
		case rs < target:
			return -1
		case rs > target:
			return 1
		default:
			return 0
		}
	})
	return slices.Insert(ready, i, id)
}

// reaches reports whether a path of connections leads from start to target.
func (g *Graph) reaches(start, target NodeID) bool {
	visited := make(map[NodeID]bool)
	stack := []NodeID{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		for _, e := range g.edges {
			if e.from == id && !visited[e.to] {
				stack = append(stack, e.to)
			}
		}
	}

	return false
}
