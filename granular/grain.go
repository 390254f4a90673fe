// SPDX-License-Identifier: EPL-2.0

package granular

import "github.com/ik5/grainflow/utils"

// Grain is one enveloped fragment being played from the buffer.
type Grain struct {
	// Position is the frame index read on the next advance.
	Position float64
	// Length is the number of frames the grain plays.
	Length int
	// Channel is the output channel the grain contributes to.
	Channel int

	played int
}

// Phase is the envelope progress in [0,1].
func (g *Grain) Phase() float64 {
	return float64(g.played) / float64(g.Length)
}

// Envelope is the current amplitude multiplier.
func (g *Grain) Envelope() float32 {
	return utils.TriangleEnvelope(float32(g.Phase()))
}

// Done reports whether the envelope has reached its end.
func (g *Grain) Done() bool { return g.played >= g.Length }

// advance moves the read head one frame and the envelope by 1/Length.
func (g *Grain) advance() {
	g.Position++
	g.played++
}
