// SPDX-License-Identifier: EPL-2.0

// Command grainflow plays a granular cloud built from an audio file.
//
// Settings come from GRAINFLOW_* environment variables, optionally loaded
// from a .env file; the flags below override the matching variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/grainflow"
	"github.com/ik5/grainflow/dac"
	"github.com/ik5/grainflow/granular"
	"github.com/ik5/grainflow/graph"
	"github.com/ik5/grainflow/internal/config"
	"github.com/ik5/grainflow/nodes"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

const version = "0.1.0"

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}

	logger.Tf(ctx, "run ok")
}

func doMain(ctx context.Context) error {
	var showVersion bool
	var envFile, buffer, backend, output, duration string
	flag.BoolVar(&showVersion, "v", false, "Print version and quit")
	flag.BoolVar(&showVersion, "version", false, "Print version and quit")
	flag.StringVar(&envFile, "env", "", "Load settings from this .env file")
	flag.StringVar(&buffer, "buffer", "", "Audio file to granulate ("+config.EnvBuffer+")")
	flag.StringVar(&backend, "backend", "", "Output backend: oto, headless or wav ("+config.EnvBackend+")")
	flag.StringVar(&output, "out", "", "Output file for the wav backend ("+config.EnvOutput+")")
	flag.StringVar(&duration, "duration", "", "Stop after this long, e.g. 30s ("+config.EnvDuration+")")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Flags win over the environment and the .env file.
	for key, value := range map[string]string{
		config.EnvBuffer:   buffer,
		config.EnvBackend:  backend,
		config.EnvOutput:   output,
		config.EnvDuration: duration,
	} {
		if value != "" {
			os.Setenv(key, value)
		}
	}

	conf, err := config.Load(envFile)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}
	logger.Tf(ctx, "load config ok, buffer=%v, backend=%v, output=%v, rate=%v, channels=%v, format=%v, "+
		"density=%v, grain=%v, selection=[%v,%v], gain=%v, downmix=%v, spawn=%v, seed=%v, duration=%v",
		conf.Buffer, conf.Backend, conf.Output, conf.SampleRate, conf.Channels, conf.Format,
		conf.Density, conf.GrainLen, conf.SelectionStart, conf.SelectionEnd, conf.Gain, conf.Downmix,
		conf.SpawnName, conf.Seed, conf.Duration,
	)

	if conf.Buffer == "" {
		return errors.Errorf("no input, set %v or -buffer", config.EnvBuffer)
	}

	buf, err := grainflow.LoadFile(ctx, conf.Buffer, conf.SampleRate, 0)
	if err != nil {
		return errors.Wrapf(err, "load buffer %v", conf.Buffer)
	}

	synth := newSynthesizer(conf, buf)
	ex, gains, err := buildGraph(conf, synth)
	if err != nil {
		return errors.Wrapf(err, "build graph")
	}
	conf.Channels = synth.Params().NumChannels
	logger.Tf(ctx, "graph ready, nodes=%v, order=%v, channels=%v, gain=%v",
		len(ex.Plan().Order()), ex.Plan().Order(), conf.Channels, gains[0].Gain().Value())

	// A fixed length wav is rendered offline instead of in real time.
	if conf.Backend == dac.HostWAV && conf.Duration > 0 {
		return renderOffline(ctx, conf, ex)
	}

	stream, err := dac.Open(ctx, conf.StreamConfig(), ex)
	if err != nil {
		return errors.Wrapf(err, "open %v output", conf.Backend)
	}
	defer stream.Close()

	// Install signals.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for s := range sc {
			logger.Tf(ctx, "Got signal %v", s)
			cancel()
		}
	}()

	if conf.Duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, conf.Duration)
		defer cancelTimeout()
	}

	if err := stream.Start(); err != nil {
		return errors.Wrapf(err, "start stream")
	}
	logger.Tf(ctx, "streaming to %v", conf.Backend)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Tf(ctx, "stopping, frames=%v, spawned=%v", stream.Adaptor.Frames(), synth.Spawned())
			if err := stream.Close(); err != nil {
				return errors.Wrapf(err, "close stream")
			}
			return nil
		case <-ticker.C:
			logger.Tf(ctx, "stat frames=%v, active=%v, spawned=%v",
				stream.Adaptor.Frames(), synth.Active(), synth.Spawned())
		}
	}
}

func newSynthesizer(conf *config.Config, buf *granular.Buffer) *granular.Synthesizer {
	s := granular.New(granular.Config{SampleRate: conf.SampleRate, Seed: conf.Seed})
	s.SetBuffer(buf)
	s.SetNumChannels(conf.Channels)
	s.SetDensity(conf.Density)
	s.SetGrainDuration(conf.GrainLen)
	s.SetSelectionStart(conf.SelectionStart)
	s.SetSelectionEnd(conf.SelectionEnd)
	s.SetDownmix(conf.Downmix)
	s.SetSpawnPolicy(conf.Spawn)
	return s
}

// buildGraph wires Granular -> Gain (one per channel) -> Output.
func buildGraph(conf *config.Config, synth *granular.Synthesizer) (*graph.Executor, []*nodes.Gain, error) {
	ch := synth.Params().NumChannels
	ex := graph.NewExecutor(nil, conf.SampleRate)
	gains := make([]*nodes.Gain, ch)

	err := ex.Update(func(g *graph.Graph) error {
		src := g.AddNode(nodes.NewGranular(synth, ch))
		out := g.AddNode(nodes.NewOutput(ch))

		for c := range ch {
			gains[c] = nodes.NewGain(conf.Gain)
			id := g.AddNode(gains[c])
			if err := g.Connect(src, c, id, 0); err != nil {
				return err
			}
			if err := g.Connect(id, 0, out, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ex, gains, nil
}

func renderOffline(ctx context.Context, conf *config.Config, ex *graph.Executor) error {
	a, err := dac.NewAdaptor(dac.FormatFloat32LE, conf.Channels)
	if err != nil {
		return errors.Wrapf(err, "adaptor")
	}
	a.SetSource(ex)

	f, err := os.Create(conf.Output)
	if err != nil {
		return errors.Wrapf(err, "create %v", conf.Output)
	}

	frames := int(conf.Duration.Seconds() * float64(conf.SampleRate))
	if err := renderFile(f, a, conf.SampleRate, frames); err != nil {
		return errors.Wrapf(err, "render %v", conf.Output)
	}

	logger.Tf(ctx, "rendered %v frames (%v) to %v", frames, conf.Duration, conf.Output)
	return nil
}

type wavFile interface {
	io.WriteSeeker
	io.Closer
}

// renderFile writes frames of a as wav into f and closes f exactly once.
func renderFile(f wavFile, a *dac.Adaptor, sampleRate, frames int) error {
	if err := dac.RenderWAV(f, a, sampleRate, frames); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close")
	}
	return nil
}
