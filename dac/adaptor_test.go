// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampSource emits frame k as [k*step, -k*step, ...].
type rampSource struct {
	k    int
	step float32
}

func (r *rampSource) NextFrame(dst []float32) {
	for c := range dst {
		v := float32(r.k) * r.step
		if c%2 == 1 {
			v = -v
		}
		dst[c] = v
	}
	r.k++
}

type constSource float32

func (c constSource) NextFrame(dst []float32) {
	for i := range dst {
		dst[i] = float32(c)
	}
}

func decodeF32(p []byte) []float32 {
	out := make([]float32, len(p)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[4*i:]))
	}
	return out
}

func TestAdaptorSilentWithoutSource(t *testing.T) {
	a, err := NewAdaptor(FormatFloat32LE, 2)
	require.NoError(t, err)

	p := make([]byte, 64)
	for i := range p {
		p[i] = 0xff
	}
	n, err := a.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 64, n)
	assert.Equal(t, make([]float32, 16), decodeF32(p))
	assert.EqualValues(t, 8, a.Frames())
}

func TestAdaptorWholeFramesOnly(t *testing.T) {
	a, err := NewAdaptor(FormatSignedInt16LE, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, a.FrameBytes())

	n, err := a.Read(make([]byte, 20))
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	_, err = a.Read(make([]byte, 5))
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestAdaptorInterleavesFrames(t *testing.T) {
	a, err := NewAdaptor(FormatFloat32LE, 2)
	require.NoError(t, err)
	a.SetSource(&rampSource{step: 0.25})

	p := make([]byte, 4*2*3)
	_, err = a.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0.25, -0.25, 0.5, -0.5}, decodeF32(p))
}

func TestAdaptorGainAndClamp(t *testing.T) {
	a, err := NewAdaptor(FormatFloat32LE, 1)
	require.NoError(t, err)

	a.SetSource(constSource(0.8))
	assert.InDelta(t, 0.5, a.Gain().Set(0.5), 1e-6)

	buf := make([]float32, 2)
	a.Render(buf)
	assert.InDelta(t, 0.4, buf[0], 1e-6)

	// gain is bounded to [0, 1]
	assert.Equal(t, float32(1), a.Gain().Set(3))
	a.SetSource(constSource(4))
	a.Render(buf)
	assert.Equal(t, []float32{1, 1}, buf)

	a.SetSource(constSource(float32(math.NaN())))
	a.Render(buf)
	assert.Equal(t, []float32{0, 0}, buf)

	a.SetSource(nil)
	a.SetSource(constSource(-0.5))
	a.Render(buf)
	assert.Equal(t, []float32{-0.5, -0.5}, buf)
}

func TestAdaptorRejectsBadConfig(t *testing.T) {
	_, err := NewAdaptor(SampleFormat(5), 2)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewAdaptor(FormatUnsignedInt8, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAdaptorSwapSourceWhileReading(t *testing.T) {
	a, err := NewAdaptor(FormatSignedInt16LE, 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			if i%2 == 0 {
				a.SetSource(constSource(0.5))
			} else {
				a.SetSource(nil)
			}
		}
	}()

	p := make([]byte, 256)
	for range 200 {
		_, err := a.Read(p)
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestAdaptorRead_ZeroAllocs(t *testing.T) {
	a, err := NewAdaptor(FormatSignedInt16LE, 2)
	require.NoError(t, err)
	a.SetSource(&rampSource{step: 0.001})
	p := make([]byte, 4096)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = a.Read(p)
	})
	assert.Zero(t, allocs)
}

func BenchmarkAdaptorRead(b *testing.B) {
	a, _ := NewAdaptor(FormatFloat32LE, 2)
	a.SetSource(constSource(0.1))
	p := make([]byte, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = a.Read(p)
	}
}
