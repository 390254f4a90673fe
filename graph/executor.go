// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"sync"
	"sync/atomic"
)

// Executor drives a graph one cycle at a time.
//
// Update and Commit run on the control side and serialise through a mutex.
// Process and NextFrame run on the audio side: they load the published plan
// atomically and never lock. Cycles must not be run concurrently with each
// other.
type Executor struct {
	mu    sync.Mutex // guards g, control side only
	g     *Graph
	plan  atomic.Pointer[Plan]
	clock Clock
}

// NewExecutor takes ownership of g and publishes its first plan.
func NewExecutor(g *Graph, sampleRate int) *Executor {
	if g == nil {
		g = New()
	}

	ex := &Executor{
		g:     g,
		clock: Clock{SampleRate: sampleRate},
	}
	ex.plan.Store(g.Compile())

	return ex
}

// Update applies fn to the graph and publishes the resulting topology.
// The plan is republished even when fn fails part way, since every graph
// operation leaves the graph consistent.
func (ex *Executor) Update(fn func(g *Graph) error) error {
	ex.mu.Lock()
	defer ex.mu.Unlock()

	err := fn(ex.g)
	ex.commitLocked()

	return err
}

// Commit publishes the graph's current topology if it changed.
func (ex *Executor) Commit() {
	ex.mu.Lock()
	defer ex.mu.Unlock()

	ex.commitLocked()
}

func (ex *Executor) commitLocked() {
	if p := ex.plan.Load(); p != nil && p.version == ex.g.version {
		return
	}
	ex.plan.Store(ex.g.Compile())
}

// Plan returns the currently published plan.
func (ex *Executor) Plan() *Plan { return ex.plan.Load() }

// Clock returns the clock of the next cycle. Audio side only.
func (ex *Executor) Clock() Clock { return ex.clock }

// Process runs one cycle against the published plan.
func (ex *Executor) Process() {
	p := ex.plan.Load()
	p.run(ex.clock)
	ex.clock.Cycle++
}

// NextFrame runs one cycle and writes the frame gathered by the outlets
// into dst, one sample per channel. Channels with no outlet input are silent.
func (ex *Executor) NextFrame(dst []float32) {
	p := ex.plan.Load()
	p.run(ex.clock)
	ex.clock.Cycle++
	p.collect(dst)
}
