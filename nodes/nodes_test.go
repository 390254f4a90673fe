// SPDX-License-Identifier: EPL-2.0

package nodes

import (
	"math"
	"testing"

	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/granular"
	"github.com/ik5/grainflow/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsAndArity(t *testing.T) {
	t.Parallel()

	synth := granular.New(granular.Config{})

	tests := []struct {
		name      string
		node      graph.Node
		kind      graph.Kind
		ins, outs int
	}{
		{"constant", NewConstant(1), graph.KindSource, 0, 1},
		{"sine", NewSine(440), graph.KindSource, 0, 1},
		{"granular", NewGranular(synth, 2), graph.KindSource, 0, 2},
		{"multiply", NewMultiply(), graph.KindEffect, 2, 1},
		{"gain", NewGain(1), graph.KindEffect, 1, 1},
		{"pass through", NewPassThrough(3), graph.KindEffect, 3, 3},
		{"downmix", NewDownmix(4, 2, downmix.StrategySimple), graph.KindEffect, 4, 2},
		{"record", NewRecord(2, 10), graph.KindSink, 2, 0},
		{"output", NewOutput(2), graph.KindSink, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.kind, tt.node.Kind())
			assert.Equal(t, tt.ins, tt.node.NumInputs())
			assert.Equal(t, tt.outs, tt.node.NumOutputs())
		})
	}
}

func TestMultiplyChain(t *testing.T) {
	t.Parallel()

	g := graph.New()
	a := g.AddNode(NewConstant(0.5))
	b := g.AddNode(NewConstant(-0.4))
	mul := g.AddNode(NewMultiply())
	out := g.AddNode(NewOutput(1))

	require.NoError(t, g.Connect(a, 0, mul, 0))
	require.NoError(t, g.Connect(b, 0, mul, 1))
	require.NoError(t, g.Connect(mul, 0, out, 0))

	ex := graph.NewExecutor(g, 44100)
	frame := make([]float32, 1)
	ex.NextFrame(frame)

	assert.InDelta(t, -0.2, frame[0], 1e-6)
}

func TestSineFollowsClock(t *testing.T) {
	t.Parallel()

	const rate = 8

	g := graph.New()
	sine := NewSine(1)
	s := g.AddNode(sine)
	out := g.AddNode(NewOutput(1))
	require.NoError(t, g.Connect(s, 0, out, 0))

	ex := graph.NewExecutor(g, rate)
	frame := make([]float32, 1)

	for i := range 2 * rate {
		ex.NextFrame(frame)
		want := math.Sin(2 * math.Pi * float64(i%rate) / rate)
		assert.InDelta(t, want, frame[0], 1e-5, "sample %d", i)
	}

	sine.SetFrequency(2)
	assert.Equal(t, float32(2), sine.Frequency())
}

func TestGainNodeClamps(t *testing.T) {
	t.Parallel()

	g := graph.New()
	c := NewConstant(0.8)
	src := g.AddNode(c)
	gain := NewGain(5)
	gn := g.AddNode(gain)
	out := g.AddNode(NewOutput(1))
	require.NoError(t, g.Connect(src, 0, gn, 0))
	require.NoError(t, g.Connect(gn, 0, out, 0))

	ex := graph.NewExecutor(g, 44100)
	frame := make([]float32, 1)

	ex.NextFrame(frame)
	assert.InDelta(t, 0.8, frame[0], 1e-6, "gain clamped to 1")

	gain.Gain().Set(-0.5)
	c.SetValue(0.4)
	ex.NextFrame(frame)
	assert.InDelta(t, -0.2, frame[0], 1e-6)
}

func TestPassThroughBus(t *testing.T) {
	t.Parallel()

	g := graph.New()
	bus := g.AddNode(NewPassThrough(2))
	out := g.AddNode(NewOutput(2))
	for _, v := range []float32{0.1, 0.2, 0.3} {
		id := g.AddNode(NewConstant(v))
		require.NoError(t, g.Connect(id, 0, bus, 0))
	}
	one := g.AddNode(NewConstant(1))
	require.NoError(t, g.Connect(one, 0, bus, 1))
	require.NoError(t, g.Connect(bus, 0, out, 0))
	require.NoError(t, g.Connect(bus, 1, out, 1))

	ex := graph.NewExecutor(g, 44100)
	frame := make([]float32, 2)
	ex.NextFrame(frame)

	assert.InDelta(t, 0.6, frame[0], 1e-6)
	assert.InDelta(t, 1, frame[1], 1e-6)
}

func TestDownmixNode(t *testing.T) {
	t.Parallel()

	g := graph.New()
	left := g.AddNode(NewConstant(0.2))
	right := g.AddNode(NewConstant(0.6))
	dm := g.AddNode(NewDownmix(2, 1, downmix.StrategySimple))
	out := g.AddNode(NewOutput(1))

	require.NoError(t, g.Connect(left, 0, dm, 0))
	require.NoError(t, g.Connect(right, 0, dm, 1))
	require.NoError(t, g.Connect(dm, 0, out, 0))

	ex := graph.NewExecutor(g, 44100)
	frame := make([]float32, 1)
	ex.NextFrame(frame)

	assert.InDelta(t, 0.4, frame[0], 1e-6)
}

func TestRecordDropsWhenFull(t *testing.T) {
	t.Parallel()

	g := graph.New()
	counter := NewConstant(0)
	src := g.AddNode(counter)
	rec := NewRecord(1, 3)
	r := g.AddNode(rec)
	require.NoError(t, g.Connect(src, 0, r, 0))

	ex := graph.NewExecutor(g, 44100)
	for i := range 5 {
		counter.SetValue(float32(i))
		ex.Process()
	}

	assert.Equal(t, []float32{0, 1, 2}, rec.Samples())
	assert.Equal(t, 3, rec.Frames())
	assert.Equal(t, uint64(2), rec.Dropped())
	assert.True(t, rec.Full())

	rec.Reset()
	assert.Empty(t, rec.Samples())
	counter.SetValue(9)
	ex.Process()
	assert.Equal(t, []float32{9}, rec.Samples())
	assert.False(t, rec.Full())
}

// TestRecordResetWhileRecording reads and resets from the control side while
// frames are recorded; run with -race.
func TestRecordResetWhileRecording(t *testing.T) {
	t.Parallel()

	g := graph.New()
	src := g.AddNode(NewConstant(0.5))
	rec := NewRecord(2, 64)
	r := g.AddNode(rec)
	require.NoError(t, g.Connect(src, 0, r, 0))
	require.NoError(t, g.Connect(src, 0, r, 1))
	ex := graph.NewExecutor(g, 44100)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 5000 {
			ex.Process()
		}
	}()

	for range 500 {
		for _, v := range rec.Samples() {
			require.InDelta(t, 0.5, v, 1e-6)
		}
		rec.Reset()
	}
	<-done

	assert.LessOrEqual(t, rec.Frames(), 64)
}

func TestGranularNode(t *testing.T) {
	t.Parallel()

	buf, err := granular.NewBuffer([]float32{1, 1, 1}, 1, 44100)
	require.NoError(t, err)

	synth := granular.New(granular.Config{Seed: 1})
	synth.SetNumChannels(1)
	synth.SetSpawnPolicy(granular.FreeSlot{})
	synth.SetDensity(1)
	synth.SetGrainLen(3)
	synth.SetBuffer(buf)

	g := graph.New()
	src := g.AddNode(NewGranular(synth, 2))
	out := g.AddNode(NewOutput(2))
	require.NoError(t, g.Connect(src, 0, out, 0))
	require.NoError(t, g.Connect(src, 1, out, 1))

	ex := graph.NewExecutor(g, 44100)
	frame := make([]float32, 2)

	ex.NextFrame(frame)
	assert.Equal(t, []float32{0, 0}, frame)

	ex.NextFrame(frame)
	want := float32(2.0 / 3)
	assert.InDelta(t, want, frame[0], 1e-6, "mono grain spread to both outputs")
	assert.InDelta(t, want, frame[1], 1e-6)
}

func TestGraphNextFrame_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	g := graph.New()
	s := g.AddNode(NewSine(220))
	gn := g.AddNode(NewGain(0.5))
	dm := g.AddNode(NewDownmix(1, 2, downmix.StrategyPanning))
	out := g.AddNode(NewOutput(2))
	require.NoError(t, g.Connect(s, 0, gn, 0))
	require.NoError(t, g.Connect(gn, 0, dm, 0))
	require.NoError(t, g.Connect(dm, 0, out, 0))
	require.NoError(t, g.Connect(dm, 1, out, 1))

	ex := graph.NewExecutor(g, 48000)
	frame := make([]float32, 2)

	allocs := testing.AllocsPerRun(1000, func() {
		ex.NextFrame(frame)
	})
	assert.Zero(t, allocs)
}
