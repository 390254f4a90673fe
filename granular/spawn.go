// SPDX-License-Identifier: EPL-2.0

package granular

import "github.com/ik5/grainflow/utils"

// SpawnPolicy decides how likely a channel is to start a new grain in the
// current cycle. Chance must not allocate.
type SpawnPolicy interface {
	// Chance returns the spawn probability for one channel, given the
	// density parameter, the grain length in frames and how many grains are
	// already live on that channel.
	Chance(density float32, grainLen, live int) float64
}

// Probabilistic spawns with probability density*Overlap/grainLen, so on
// average Overlap*density grains play at once on each channel.
type Probabilistic struct {
	Overlap float64
}

func (p Probabilistic) Chance(density float32, grainLen, live int) float64 {
	if grainLen < 1 {
		grainLen = 1
	}
	return utils.Clamp(float64(density)*p.Overlap/float64(grainLen), 0, 1)
}

// FreeSlot keeps at most one grain per channel: a channel with no live
// grain spawns with probability density.
type FreeSlot struct{}

func (FreeSlot) Chance(density float32, _, live int) float64 {
	if live > 0 {
		return 0
	}
	return utils.Clamp(float64(density), 0, 1)
}

// DefaultOverlap is the Overlap of the default Probabilistic policy.
const DefaultOverlap = 4.0

// ParseSpawnPolicy resolves "probabilistic" or "free-slot".
func ParseSpawnPolicy(name string) (SpawnPolicy, bool) {
	switch name {
	case "probabilistic", "":
		return Probabilistic{Overlap: DefaultOverlap}, true
	case "free-slot":
		return FreeSlot{}, true
	default:
		return nil, false
	}
}
