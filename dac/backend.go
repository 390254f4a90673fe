// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"context"
	"fmt"
	"os"

	"github.com/ossrs/go-oryx-lib/logger"
)

// Backend drives an Adaptor. Start begins pulling frames; Close stops and
// releases the device. Both are control-side calls.
type Backend interface {
	Start() error
	Close() error
}

// Stream is an opened output: the Adaptor feeding it and the Backend
// pulling from it.
type Stream struct {
	Config  StreamConfig
	Adaptor *Adaptor
	Backend Backend
}

func (s *Stream) Start() error { return s.Backend.Start() }
func (s *Stream) Close() error { return s.Backend.Close() }

// Open validates cfg and builds the backend it names, with src as the frame
// source. Nothing plays until Start.
func Open(ctx context.Context, cfg StreamConfig, src FrameSource) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := NewAdaptor(cfg.Format, cfg.Channels)
	if err != nil {
		return nil, err
	}
	a.SetSource(src)

	var b Backend
	switch cfg.Host {
	case HostOto:
		b, err = newOtoBackend(cfg, a)
	case HostHeadless:
		b = NewHeadlessBackend(a, cfg.SampleRate, cfg.bufferSize())
	case HostWAV:
		b, err = newWAVFileBackend(cfg, a)
	}
	if err != nil {
		return nil, err
	}

	logger.Tf(ctx, "dac: opened %v host, device=%q, format=%v, channels=%v, rate=%v, buffer=%v",
		cfg.Host, cfg.Device, cfg.Format, cfg.Channels, cfg.SampleRate, cfg.bufferSize())

	return &Stream{Config: cfg, Adaptor: a, Backend: b}, nil
}

func newWAVFileBackend(cfg StreamConfig, a *Adaptor) (Backend, error) {
	f, err := os.Create(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("creating %v: %w", cfg.Device, err)
	}

	b, err := NewWAVBackend(f, a, cfg.SampleRate, cfg.bufferSize())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	b.closer = f
	return b, nil
}
