// SPDX-License-Identifier: EPL-2.0

package granular

import (
	"time"

	"github.com/ik5/grainflow/downmix"
	"github.com/ik5/grainflow/utils"
)

const (
	MaxNumChannels     = 500
	DefaultNumChannels = 2
	DefaultSampleRate  = 44100
	DefaultDensity     = 0.5
	DefaultMaxGrains   = 2048

	GrainLenMin     = 10 * time.Millisecond
	GrainLenMax     = 1000 * time.Millisecond
	DefaultGrainLen = 100 * time.Millisecond
)

// Params is the control state read by the audio side at the start of every
// cycle. Values are always valid: the setters clamp before publishing.
type Params struct {
	Density        float32
	GrainLen       int // frames, at least 1
	NumChannels    int
	SelectionStart utils.Percentage
	SelectionEnd   utils.Percentage
	Downmix        downmix.Strategy
	Spawn          SpawnPolicy
}

func defaultParams(sampleRate int) Params {
	return Params{
		Density:        DefaultDensity,
		GrainLen:       durationToFrames(DefaultGrainLen, sampleRate),
		NumChannels:    DefaultNumChannels,
		SelectionStart: 0,
		SelectionEnd:   1,
		Downmix:        downmix.StrategySimple,
		Spawn:          Probabilistic{Overlap: DefaultOverlap},
	}
}

func sanitizeDensity(d float32) float32 {
	if d != d {
		return 0
	}
	return utils.Clamp(d, 0, 1)
}

func sanitizeNumChannels(n int) int {
	return utils.Clamp(n, 1, MaxNumChannels)
}

func sanitizeGrainDuration(d time.Duration) time.Duration {
	return utils.Clamp(d, GrainLenMin, GrainLenMax)
}

func durationToFrames(d time.Duration, sampleRate int) int {
	return max(1, int(d.Seconds()*float64(sampleRate)))
}
