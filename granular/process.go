// SPDX-License-Identifier: EPL-2.0

package granular

import "github.com/ik5/grainflow/utils"

// NextFrame runs one cycle and writes one sample per channel into dst.
// When len(dst) differs from the NumChannels parameter the channel frame is
// mapped with the configured downmix strategy. Audio side only; calls must
// not overlap.
func (s *Synthesizer) NextFrame(dst []float32) {
	p := s.params.Load()
	buf := s.buffer.Load()

	if s.reseed.CompareAndSwap(true, false) {
		s.rng.Seed(s.seed.Load())
	}
	if buf != s.seen {
		s.retireOutside(buf)
		s.seen = buf
	}

	n := p.NumChannels
	frame := s.frame[:n]
	clear(frame)

	s.spawn(p, buf)
	s.mix(p, frame, buf)

	g := s.gain.Value()
	for i := range frame {
		frame[i] *= g
	}

	s.active.Store(int32(len(s.grains)))

	if len(dst) == n {
		copy(dst, frame)
		return
	}
	p.Downmix.Apply(frame, dst)
}

func (s *Synthesizer) spawn(p *Params, buf *Buffer) {
	frames := buf.Frames()
	if frames == 0 {
		return
	}

	start := p.SelectionStart.Of(frames)
	end := p.SelectionEnd.Of(frames)
	if end <= start {
		return
	}
	length := min(p.GrainLen, end-start)

	for ch := range p.NumChannels {
		if len(s.grains) == cap(s.grains) {
			return
		}

		chance := p.Spawn.Chance(p.Density, length, s.live[ch])
		if chance <= 0 || s.rng.Float64() >= chance {
			continue
		}

		pos := start
		if span := end - length - start; span > 0 {
			pos += s.rng.Intn(span + 1)
		}

		s.grains = append(s.grains, Grain{
			Position: float64(pos),
			Length:   length,
			Channel:  ch,
		})
		s.live[ch]++
		s.spawned.Add(1)
	}
}

// mix adds every grain's enveloped sample to its channel, advances it and
// retires it once its envelope is complete. When the buffer channel count
// differs from the engine's, each grain reads the whole buffer frame at its
// position and maps it onto the engine channels with the downmix strategy.
func (s *Synthesizer) mix(p *Params, frame []float32, buf *Buffer) {
	if buf == nil || buf.Channels <= 0 || len(s.grains) == 0 {
		return
	}
	n := len(frame)
	remap := buf.Channels != n
	src := s.src[:min(buf.Channels, len(s.src))]
	mapped := s.mapped[:n]

	for i := 0; i < len(s.grains); {
		g := &s.grains[i]
		if g.Channel >= n {
			s.retire(i)
			continue
		}

		var v float32
		if remap {
			buf.Frame(g.Position, src)
			p.Downmix.Apply(src, mapped)
			v = mapped[g.Channel]
		} else {
			v = buf.Sample(g.Position, g.Channel)
		}
		frame[g.Channel] += v * utils.TriangleEnvelope(float32(g.Phase()))
		g.advance()

		if g.Done() {
			s.retire(i)
			continue
		}
		i++
	}
}

func (s *Synthesizer) retire(i int) {
	last := len(s.grains) - 1
	s.live[s.grains[i].Channel]--
	s.grains[i] = s.grains[last]
	s.grains = s.grains[:last]
}

// retireOutside drops grains whose remaining frames fall outside buf.
func (s *Synthesizer) retireOutside(buf *Buffer) {
	frames := buf.Frames()
	for i := 0; i < len(s.grains); {
		g := &s.grains[i]
		end := int(g.Position) + (g.Length - g.played)
		if end > frames {
			s.retire(i)
			continue
		}
		i++
	}
}

// Grains appends a copy of the live grains to dst. Audio side only.
func (s *Synthesizer) Grains(dst []Grain) []Grain {
	return append(dst, s.grains...)
}
