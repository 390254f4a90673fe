// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/grainflow/utils"
)

// Writer streams interleaved float samples into a 16-bit PCM WAV file.
// The header is completed by Close.
type Writer struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
}

// NewWriter starts a WAV file on w.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Writer{
		enc: wav.NewEncoder(w, sampleRate, 16, channels, pcmFormat),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
		channels: channels,
	}, nil
}

// WriteFloat32 converts samples to 16-bit PCM and appends them.
// NaN becomes silence and values outside [-1,1] are clamped.
func (w *Writer) WriteFloat32(samples []float32) error {
	w.grow(len(samples))
	for i, s := range samples {
		w.buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	return w.flush()
}

// WriteInt16 appends 16-bit PCM samples.
func (w *Writer) WriteInt16(samples []int16) error {
	w.grow(len(samples))
	for i, s := range samples {
		w.buf.Data[i] = int(s)
	}

	return w.flush()
}

// Close writes the final header sizes. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}

func (w *Writer) grow(n int) {
	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]
}

func (w *Writer) flush() error {
	if len(w.buf.Data) == 0 {
		return nil
	}
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}

// WriteWAV16 writes a complete 16-bit PCM WAV file with the given
// interleaved samples.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	ww, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}
	if err := ww.WriteInt16(samples); err != nil {
		return err
	}
	return ww.Close()
}
