// SPDX-License-Identifier: EPL-2.0

// Package graph runs a feed-forward network of processing nodes once per
// audio frame.
//
// A Graph is edited from the control side: nodes are added, ports are
// connected and nodes are removed. Every edit is checked synchronously, so a
// connection that would close a loop fails with a *CycleError and a port
// outside a node's arity fails with a *PortIndexError; in both cases the
// graph is left unchanged.
//
// The Executor compiles the graph into an immutable Plan and publishes it
// through an atomic pointer. The audio side loads the current plan at the
// start of each cycle and walks it in topological order without locking or
// allocating:
//
//	g := graph.New()
//	osc := g.AddNode(nodes.NewSine(440))
//	out := g.AddNode(nodes.NewOutput(1))
//	if err := g.Connect(osc, 0, out, 0); err != nil {
//	    return err
//	}
//
//	ex := graph.NewExecutor(g, 48000)
//	frame := make([]float32, 1)
//	ex.NextFrame(frame)
//
// Graph itself is not safe for concurrent use; edit it through
// Executor.Update once an executor owns it.
package graph
