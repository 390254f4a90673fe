// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("connection not found")
	ErrNilNode      = errors.New("nil node")
)

// CycleError is returned by Connect when the new edge would let a signal
// flow back into its origin.
type CycleError struct {
	From, To NodeID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("connecting %v -> %v would create a cycle", e.From, e.To)
}

// Direction tells which side of a node a port belongs to.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// PortIndexError is returned when a port index is outside the node's arity.
type PortIndexError struct {
	Node  NodeID
	Dir   Direction
	Port  int
	Arity int
}

func (e *PortIndexError) Error() string {
	return fmt.Sprintf("%v port %d out of range for node %v with %d %ss",
		e.Dir, e.Port, e.Node, e.Arity, e.Dir)
}
