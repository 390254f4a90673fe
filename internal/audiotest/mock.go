// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a waveform function. It satisfies
// audio.Source.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   func(frame, channel int) float32

	// ReadErr, when set, is returned by the next ReadSamples call.
	ReadErr error
	// Closed records whether Close was called.
	Closed bool
}

// NewSource returns a source of frames frames produced by waveform.
func NewSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource emits frame/frames on every channel, rising from 0 towards 1.
func NewRampSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

// NewChannelSource emits the channel index on each channel.
func NewChannelSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(_, channel int) float32 {
		return float32(channel)
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

// Reset rewinds the source.
func (s *Source) Reset() { s.generated = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.ReadErr != nil {
		err := s.ReadErr
		s.ReadErr = nil
		return 0, err
	}
	if s.generated >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.generated)
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.generated+f, c)
		}
	}
	s.generated += n

	if s.generated >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
