// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/grainflow/formats/wav"
)

// WAVBackend is a HeadlessBackend whose sink is a 16-bit WAV file.
type WAVBackend struct {
	*HeadlessBackend
	w      *wav.Writer
	closer io.Closer
}

// NewWAVBackend writes the stream to w in real time. The file header is
// completed by Close.
func NewWAVBackend(w io.WriteSeeker, a *Adaptor, sampleRate int, period time.Duration) (*WAVBackend, error) {
	ww, err := wav.NewWriter(w, sampleRate, a.Channels())
	if err != nil {
		return nil, fmt.Errorf("starting wav output: %w", err)
	}

	h := NewHeadlessBackend(a, sampleRate, period)
	h.sink = ww.WriteFloat32
	return &WAVBackend{HeadlessBackend: h, w: ww}, nil
}

func (b *WAVBackend) Close() error {
	err := b.HeadlessBackend.Close()
	if b.w != nil {
		err = errors.Join(err, b.w.Close())
		b.w = nil
		if b.closer != nil {
			err = errors.Join(err, b.closer.Close())
		}
	}
	return err
}

// RenderWAV renders frames frames from a as fast as possible into a 16-bit
// WAV file on w.
func RenderWAV(w io.WriteSeeker, a *Adaptor, sampleRate, frames int) error {
	ww, err := wav.NewWriter(w, sampleRate, a.Channels())
	if err != nil {
		return fmt.Errorf("starting wav render: %w", err)
	}

	const blockFrames = 1024
	buf := make([]float32, blockFrames*a.Channels())
	for frames > 0 {
		n := min(frames, blockFrames)
		a.Render(buf[:n*a.Channels()])
		if err := ww.WriteFloat32(buf[:n*a.Channels()]); err != nil {
			return err
		}
		frames -= n
	}

	return ww.Close()
}
