// SPDX-License-Identifier: EPL-2.0

package grainflow

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ik5/grainflow/audio"
	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/formats/aiff"
	"github.com/ik5/grainflow/formats/mp3"
	"github.com/ik5/grainflow/formats/vorbis"
	"github.com/ik5/grainflow/formats/wav"
	"github.com/ik5/grainflow/granular"
	"github.com/ossrs/go-oryx-lib/logger"
)

const loadChunk = 16384

var (
	registryOnce sync.Once
	registry     *audio.Registry
)

// Registry returns the decoders known to LoadFile, keyed by file extension.
// Callers may register more.
func Registry() *audio.Registry {
	registryOnce.Do(func() {
		registry = audio.NewRegistry()
		registry.Register("wav", wav.Decoder{})
		registry.Register("wave", wav.Decoder{})
		registry.Register("mp3", mp3.Decoder{})
		registry.Register("ogg", vorbis.Decoder{})
		registry.Register("oga", vorbis.Decoder{})
		registry.Register("aif", aiff.Decoder{})
		registry.Register("aiff", aiff.Decoder{})
	})
	return registry
}

// LoadFile decodes path with the decoder registered for its extension and
// returns it as a Buffer. See LoadBuffer for rate and channels.
func LoadFile(ctx context.Context, path string, rate, channels int) (*granular.Buffer, error) {
	dec, err := Registry().ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %v: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %v: %w", path, err)
	}

	logger.Tf(ctx, "load: %v rate=%v channels=%v", path, src.SampleRate(), src.Channels())
	return LoadBuffer(ctx, src, rate, channels)
}

// LoadBuffer drains src into a Buffer, resampled to rate and mapped to
// channels by averaging. A non-positive rate or channels keeps the
// source's own. src is closed.
func LoadBuffer(ctx context.Context, src audio.Source, rate, channels int) (*granular.Buffer, error) {
	if src == nil {
		return nil, audio.ErrNilSource
	}
	if rate <= 0 {
		rate = src.SampleRate()
	}
	if channels <= 0 {
		channels = src.Channels()
	}
	if src.SampleRate() <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if src.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	chain := src
	if src.SampleRate() != rate {
		chain = audio.NewResampler(chain, rate)
	}
	if src.Channels() != channels {
		m, err := audio.NewMixer(chain, channels, downmix.StrategySimple)
		if err != nil {
			return nil, err
		}
		chain = m
	}
	defer chain.Close()

	samples, err := audio.ReadAll(ctx, chain, loadChunk)
	if err != nil {
		return nil, err
	}

	buf, err := granular.NewBuffer(samples, channels, rate)
	if err != nil {
		return nil, err
	}

	logger.Tf(ctx, "load: buffer ready, frames=%v channels=%v rate=%v duration=%.3fs",
		buf.Frames(), buf.Channels, buf.SampleRate, buf.Seconds())
	return buf, nil
}
