// SPDX-License-Identifier: EPL-2.0

package utils

import "sync/atomic"

// Default gain bounds.
const (
	GainMin float32 = -1.0
	GainMax float32 = 1.0
)

type gainState struct {
	min, max, value float32
}

// Gain is an amplitude multiplier held within per-instance bounds.
// Setters clamp instead of failing. Value may be read from the audio callback
// while the control side calls the setters.
type Gain struct {
	s atomic.Pointer[gainState]
}

// NewGain creates a gain with the default bounds.
func NewGain(v float32) *Gain {
	return NewGainBounded(v, GainMin, GainMax)
}

// NewGainBounded creates a gain with explicit bounds. Reversed bounds are swapped.
func NewGainBounded(v, lo, hi float32) *Gain {
	g := &Gain{}
	lo, hi = orderBounds(lo, hi)
	g.s.Store(&gainState{min: lo, max: hi, value: clampGain(v, lo, hi)})
	return g
}

// Value returns the current gain.
func (g *Gain) Value() float32 { return g.s.Load().value }

// Bounds returns the current [min, max] range.
func (g *Gain) Bounds() (float32, float32) {
	s := g.s.Load()
	return s.min, s.max
}

// Set stores v clamped into the current bounds and returns the stored value.
func (g *Gain) Set(v float32) float32 {
	for {
		old := g.s.Load()
		next := &gainState{min: old.min, max: old.max, value: clampGain(v, old.min, old.max)}
		if g.s.CompareAndSwap(old, next) {
			return next.value
		}
	}
}

// SetBounds replaces the range and re-clamps the current value into it.
func (g *Gain) SetBounds(lo, hi float32) {
	lo, hi = orderBounds(lo, hi)
	for {
		old := g.s.Load()
		next := &gainState{min: lo, max: hi, value: clampGain(old.value, lo, hi)}
		if g.s.CompareAndSwap(old, next) {
			return
		}
	}
}

// Apply scales x by the current gain.
func (g *Gain) Apply(x float32) float32 { return x * g.Value() }

func clampGain(v, lo, hi float32) float32 {
	if v != v {
		return Clamp(0, lo, hi)
	}
	return Clamp(v, lo, hi)
}

func orderBounds(lo, hi float32) (float32, float32) {
	if lo != lo {
		lo = GainMin
	}
	if hi != hi {
		hi = GainMax
	}
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}
