// SPDX-License-Identifier: EPL-2.0

package granular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	src := []float32{0.1, 0.2, 0.3, 0.4, 0.5}
	b, err := NewBuffer(src, 2, 8000)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Frames(), "partial trailing frame is dropped")
	assert.Len(t, b.Samples, 4)

	src[0] = 9
	assert.Equal(t, float32(0.1), b.Samples[0], "buffer owns a copy")

	_, err = NewBuffer(src, 0, 8000)
	assert.ErrorIs(t, err, ErrInvalidChannels)
	_, err = NewBuffer(src, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
	_, err = NewBuffer(src, MaxNumChannels+1, 8000)
	assert.ErrorIs(t, err, ErrTooManyChannels)
}

func TestBufferFrame(t *testing.T) {
	t.Parallel()

	b := &Buffer{Samples: []float32{0, 1, 1, 0, 0.5, 0.5}, Channels: 2, SampleRate: 100}

	tests := []struct {
		name string
		pos  float64
		want []float32
	}{
		{"before start", -1, []float32{0, 1}},
		{"first frame", 0, []float32{0, 1}},
		{"between", 0.5, []float32{0.5, 0.5}},
		{"between later", 1.5, []float32{0.75, 0.25}},
		{"past end holds", 10, []float32{0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make([]float32, 2)
			b.Frame(tt.pos, got)
			assert.InDeltaSlice(t, tt.want, got, 1e-6)
			for ch := range got {
				assert.InDelta(t, b.Sample(tt.pos, ch), got[ch], 1e-6, "matches Sample")
			}
		})
	}

	short := []float32{9}
	b.Frame(0, short)
	assert.Equal(t, []float32{0}, short, "extra channels skipped")
}

func TestBufferSample(t *testing.T) {
	t.Parallel()

	// two channels, three frames
	b := &Buffer{Samples: []float32{0, 1, 1, 0, 0.5, 0.5}, Channels: 2, SampleRate: 100}

	tests := []struct {
		name string
		pos  float64
		ch   int
		want float32
	}{
		{"first frame left", 0, 0, 0},
		{"first frame right", 0, 1, 1},
		{"between left", 0.5, 0, 0.5},
		{"between right", 0.5, 1, 0.5},
		{"last frame", 2, 0, 0.5},
		{"past end holds", 10, 1, 0.5},
		{"channel wraps", 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, b.Sample(tt.pos, tt.ch), 1e-6)
		})
	}

	var empty *Buffer
	assert.Zero(t, empty.Frames())
	assert.InDelta(t, 0.03, b.Seconds(), 1e-9)
}
