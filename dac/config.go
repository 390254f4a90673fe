// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"fmt"
	"time"
)

const (
	HostOto      = "oto"
	HostHeadless = "headless"
	HostWAV      = "wav"

	DefaultBufferSize = 20 * time.Millisecond
)

// StreamConfig describes the output stream to open.
type StreamConfig struct {
	// Host selects the backend: HostOto, HostHeadless or HostWAV.
	Host string

	// Device is backend specific. For HostWAV it is the output file path;
	// the other hosts ignore it.
	Device string

	Format     SampleFormat
	Channels   int
	SampleRate int

	// BufferSize is the device latency, and the pull period of the
	// ticker-driven hosts. Zero means DefaultBufferSize.
	BufferSize time.Duration
}

// Validate reports the first problem with c.
func (c StreamConfig) Validate() error {
	switch c.Host {
	case HostOto, HostHeadless, HostWAV:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHost, c.Host)
	}
	if !c.Format.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, c.Format)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("%w: channels %d", ErrInvalidConfig, c.Channels)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size %v", ErrInvalidConfig, c.BufferSize)
	}
	if c.Host == HostWAV && c.Device == "" {
		return fmt.Errorf("%w: wav host needs an output path", ErrInvalidConfig)
	}
	return nil
}

func (c StreamConfig) bufferSize() time.Duration {
	if c.BufferSize == 0 {
		return DefaultBufferSize
	}
	return c.BufferSize
}
