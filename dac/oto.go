// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package dac

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoBackend plays the stream on the default system device. oto allows
// one context per process, so only one OtoBackend may be opened.
type OtoBackend struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
	closed  bool
}

func otoFormat(f SampleFormat) (oto.Format, error) {
	switch f {
	case FormatFloat32LE:
		return oto.FormatFloat32LE, nil
	case FormatSignedInt16LE:
		return oto.FormatSignedInt16LE, nil
	case FormatUnsignedInt8:
		return oto.FormatUnsignedInt8, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

func newOtoBackend(cfg StreamConfig, a *Adaptor) (Backend, error) {
	format, err := otoFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       format,
		BufferSize:   cfg.bufferSize(),
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &OtoBackend{
		ctx:    ctx,
		player: ctx.NewPlayer(a),
	}, nil
}

func (o *OtoBackend) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrClosed
	}
	if o.started {
		return ErrAlreadyStarted
	}
	o.player.Play()
	o.started = true
	return nil
}

func (o *OtoBackend) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.started = false

	if err := o.player.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}
	return o.player.Err()
}
