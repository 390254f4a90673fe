// SPDX-License-Identifier: EPL-2.0

// Package config reads the grainflow process settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/grainflow/dac"
	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/granular"
	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
)

// Environment keys.
const (
	EnvBuffer         = "GRAINFLOW_BUFFER"
	EnvBackend        = "GRAINFLOW_BACKEND"
	EnvOutput         = "GRAINFLOW_OUTPUT"
	EnvSampleRate     = "GRAINFLOW_SAMPLE_RATE"
	EnvChannels       = "GRAINFLOW_CHANNELS"
	EnvFormat         = "GRAINFLOW_FORMAT"
	EnvBufferSize     = "GRAINFLOW_BUFFER_SIZE"
	EnvDensity        = "GRAINFLOW_DENSITY"
	EnvGrainLenMs     = "GRAINFLOW_GRAIN_LEN_MS"
	EnvSelectionStart = "GRAINFLOW_SELECTION_START"
	EnvSelectionEnd   = "GRAINFLOW_SELECTION_END"
	EnvGain           = "GRAINFLOW_GAIN"
	EnvDownmix        = "GRAINFLOW_DOWNMIX"
	EnvSpawn          = "GRAINFLOW_SPAWN"
	EnvSeed           = "GRAINFLOW_SEED"
	EnvDuration       = "GRAINFLOW_DURATION"
)

// Keys lists every key Load reads.
var Keys = []string{
	EnvBuffer, EnvBackend, EnvOutput, EnvSampleRate, EnvChannels, EnvFormat,
	EnvBufferSize, EnvDensity, EnvGrainLenMs, EnvSelectionStart, EnvSelectionEnd,
	EnvGain, EnvDownmix, EnvSpawn, EnvSeed, EnvDuration,
}

// Config is the resolved process configuration. Numeric parameters are
// passed to the engine setters as is; the setters clamp them.
type Config struct {
	Buffer string

	Backend    string
	Output     string
	SampleRate int
	Channels   int
	Format     dac.SampleFormat

	// BufferFrames is the device period in frames.
	BufferFrames int

	Density        float32
	GrainLen       time.Duration
	SelectionStart float32
	SelectionEnd   float32
	Gain           float32
	Downmix        downmix.Strategy
	Spawn          granular.SpawnPolicy
	SpawnName      string
	Seed           int64

	// Duration bounds the run; zero runs until interrupted.
	Duration time.Duration
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

// Load applies envFile (if not empty) to the environment without
// overriding variables that are already set, fills in defaults and parses
// the result.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load %v", envFile)
		}
	}

	setEnvDefault(EnvBackend, dac.HostOto)
	setEnvDefault(EnvOutput, "grainflow.wav")
	setEnvDefault(EnvSampleRate, strconv.Itoa(granular.DefaultSampleRate))
	setEnvDefault(EnvChannels, strconv.Itoa(granular.DefaultNumChannels))
	setEnvDefault(EnvFormat, dac.FormatFloat32LE.String())
	setEnvDefault(EnvBufferSize, "1024")
	setEnvDefault(EnvDensity, "0.5")
	setEnvDefault(EnvGrainLenMs, "100")
	setEnvDefault(EnvSelectionStart, "0")
	setEnvDefault(EnvSelectionEnd, "1")
	setEnvDefault(EnvGain, "0.5")
	setEnvDefault(EnvDownmix, downmix.StrategyPanning.String())
	setEnvDefault(EnvSpawn, "probabilistic")
	setEnvDefault(EnvSeed, "0")
	setEnvDefault(EnvDuration, "0")

	return parse()
}

func parse() (*Config, error) {
	var err error
	c := &Config{
		Buffer:    strings.TrimSpace(os.Getenv(EnvBuffer)),
		Backend:   strings.ToLower(strings.TrimSpace(os.Getenv(EnvBackend))),
		Output:    strings.TrimSpace(os.Getenv(EnvOutput)),
		SpawnName: strings.ToLower(strings.TrimSpace(os.Getenv(EnvSpawn))),
	}

	switch c.Backend {
	case dac.HostOto, dac.HostHeadless, dac.HostWAV:
	default:
		return nil, errors.Errorf("%v: unknown backend %q", EnvBackend, c.Backend)
	}

	if c.SampleRate, err = envInt(EnvSampleRate); err != nil {
		return nil, err
	}
	if c.SampleRate <= 0 {
		c.SampleRate = granular.DefaultSampleRate
	}
	if c.Channels, err = envInt(EnvChannels); err != nil {
		return nil, err
	}
	if c.BufferFrames, err = envInt(EnvBufferSize); err != nil {
		return nil, err
	}

	if c.Format, err = dac.ParseSampleFormat(os.Getenv(EnvFormat)); err != nil {
		return nil, errors.Wrapf(err, "parse %v", EnvFormat)
	}
	if c.Downmix, err = downmix.ParseStrategy(os.Getenv(EnvDownmix)); err != nil {
		return nil, errors.Wrapf(err, "parse %v", EnvDownmix)
	}

	var ok bool
	if c.Spawn, ok = granular.ParseSpawnPolicy(c.SpawnName); !ok {
		return nil, errors.Errorf("%v: unknown spawn policy %q", EnvSpawn, c.SpawnName)
	}

	if c.Density, err = envFloat(EnvDensity); err != nil {
		return nil, err
	}
	if c.SelectionStart, err = envFloat(EnvSelectionStart); err != nil {
		return nil, err
	}
	if c.SelectionEnd, err = envFloat(EnvSelectionEnd); err != nil {
		return nil, err
	}
	if c.Gain, err = envFloat(EnvGain); err != nil {
		return nil, err
	}

	ms, err := envFloat(EnvGrainLenMs)
	if err != nil {
		return nil, err
	}
	c.GrainLen = time.Duration(float64(ms) * float64(time.Millisecond))

	seed, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(EnvSeed)), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %v", EnvSeed)
	}
	c.Seed = seed

	if c.Duration, err = ParseDuration(os.Getenv(EnvDuration)); err != nil {
		return nil, errors.Wrapf(err, "parse %v", EnvDuration)
	}

	return c, nil
}

func envInt(key string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %v", key)
	}
	return v, nil
}

func envFloat(key string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %v", key)
	}
	return float32(v), nil
}

// ParseDuration accepts a Go duration ("1m30s") or a bare number of seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs < 0 {
			return 0, errors.Errorf("negative duration %v", s)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(err, "duration %q", s)
	}
	if d < 0 {
		return 0, errors.Errorf("negative duration %v", s)
	}
	return d, nil
}

// StreamConfig is the output stream described by c.
func (c *Config) StreamConfig() dac.StreamConfig {
	var size time.Duration
	if c.BufferFrames > 0 && c.SampleRate > 0 {
		size = time.Duration(c.BufferFrames) * time.Second / time.Duration(c.SampleRate)
	}

	cfg := dac.StreamConfig{
		Host:       c.Backend,
		Format:     c.Format,
		Channels:   c.Channels,
		SampleRate: c.SampleRate,
		BufferSize: size,
	}
	if c.Backend == dac.HostWAV {
		cfg.Device = c.Output
	}
	return cfg
}
