// SPDX-License-Identifier: EPL-2.0

package granular

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/utils"
)

// Config sets the fixed properties of a Synthesizer.
type Config struct {
	// SampleRate of the output stream; grain durations convert with it.
	SampleRate int
	// MaxGrains bounds the number of grains alive at once.
	MaxGrains int
	// Seed for the grain position generator.
	Seed int64
}

// Synthesizer generates frames of granular audio from a shared Buffer.
type Synthesizer struct {
	sampleRate int

	mu     sync.Mutex // serialises setters, control side only
	params atomic.Pointer[Params]
	buffer atomic.Pointer[Buffer]
	gain   *utils.Gain

	seed    atomic.Int64
	reseed  atomic.Bool
	active  atomic.Int32
	spawned atomic.Uint64

	// audio side state
	rng    *rand.Rand
	grains []Grain
	live   []int
	frame  []float32
	src    []float32 // one buffer frame
	mapped []float32 // src mapped onto the engine channels
	seen   *Buffer
}

// New creates a synthesizer with no buffer. It stays silent until SetBuffer
// publishes samples.
func New(cfg Config) *Synthesizer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.MaxGrains <= 0 {
		cfg.MaxGrains = DefaultMaxGrains
	}

	s := &Synthesizer{
		sampleRate: cfg.SampleRate,
		gain:       utils.NewGain(1),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		grains:     make([]Grain, 0, cfg.MaxGrains),
		live:       make([]int, MaxNumChannels),
		frame:      make([]float32, MaxNumChannels),
		src:        make([]float32, MaxNumChannels),
		mapped:     make([]float32, MaxNumChannels),
	}
	s.seed.Store(cfg.Seed)

	p := defaultParams(cfg.SampleRate)
	s.params.Store(&p)

	return s
}

// SampleRate of the generated stream.
func (s *Synthesizer) SampleRate() int { return s.sampleRate }

// Params returns a copy of the current parameters.
func (s *Synthesizer) Params() Params { return *s.params.Load() }

// Gain exposes the output gain, whose bounds are configurable.
func (s *Synthesizer) Gain() *utils.Gain { return s.gain }

// Buffer returns the published buffer, or nil.
func (s *Synthesizer) Buffer() *Buffer { return s.buffer.Load() }

// Active is the number of live grains after the latest cycle.
func (s *Synthesizer) Active() int { return int(s.active.Load()) }

// Spawned counts every grain started since creation.
func (s *Synthesizer) Spawned() uint64 { return s.spawned.Load() }

// SetBuffer publishes b as the sample source. Grains that do not fit in the
// new buffer are retired on the next cycle. b must not be modified afterwards.
func (s *Synthesizer) SetBuffer(b *Buffer) {
	s.buffer.Store(b)
}

func (s *Synthesizer) update(fn func(p *Params)) Params {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.params.Load()
	fn(&next)
	s.params.Store(&next)

	return next
}

// SetDensity clamps d into [0,1].
func (s *Synthesizer) SetDensity(d float32) float32 {
	return s.update(func(p *Params) { p.Density = sanitizeDensity(d) }).Density
}

// SetGrainLen sets the grain length in frames, at least 1.
func (s *Synthesizer) SetGrainLen(frames int) int {
	return s.update(func(p *Params) { p.GrainLen = max(1, frames) }).GrainLen
}

// SetGrainDuration sets the grain length in time, clamped to
// [GrainLenMin, GrainLenMax], and returns the resulting frame count.
func (s *Synthesizer) SetGrainDuration(d time.Duration) int {
	frames := durationToFrames(sanitizeGrainDuration(d), s.sampleRate)
	return s.SetGrainLen(frames)
}

// GrainDuration is the grain length converted back to time.
func (s *Synthesizer) GrainDuration() time.Duration {
	frames := s.params.Load().GrainLen
	return time.Duration(float64(frames) / float64(s.sampleRate) * float64(time.Second))
}

// SetNumChannels clamps n into [1, MaxNumChannels].
func (s *Synthesizer) SetNumChannels(n int) int {
	return s.update(func(p *Params) { p.NumChannels = sanitizeNumChannels(n) }).NumChannels
}

// SetGain clamps v into the gain bounds.
func (s *Synthesizer) SetGain(v float32) float32 {
	return s.gain.Set(v)
}

// SetSelectionStart moves the start of the playable region. The end is
// dragged along when the start passes it.
func (s *Synthesizer) SetSelectionStart(v float32) {
	s.update(func(p *Params) {
		p.SelectionStart = utils.NewPercentage(v)
		if p.SelectionStart > p.SelectionEnd {
			p.SelectionEnd = p.SelectionStart
		}
	})
}

// SetSelectionEnd moves the end of the playable region. The start is
// dragged along when the end passes it.
func (s *Synthesizer) SetSelectionEnd(v float32) {
	s.update(func(p *Params) {
		p.SelectionEnd = utils.NewPercentage(v)
		if p.SelectionEnd < p.SelectionStart {
			p.SelectionStart = p.SelectionEnd
		}
	})
}

// SetDownmix selects how a buffer frame is mapped onto the engine channels
// and how the channel frame is mapped onto a different output channel count.
func (s *Synthesizer) SetDownmix(st downmix.Strategy) {
	s.update(func(p *Params) { p.Downmix = st })
}

// SetSpawnPolicy replaces the spawn policy. A nil policy restores the default.
func (s *Synthesizer) SetSpawnPolicy(sp SpawnPolicy) {
	if sp == nil {
		sp = Probabilistic{Overlap: DefaultOverlap}
	}
	s.update(func(p *Params) { p.Spawn = sp })
}

// SetSeed reseeds the position generator before the next cycle.
func (s *Synthesizer) SetSeed(seed int64) {
	s.seed.Store(seed)
	s.reseed.Store(true)
}
