// SPDX-License-Identifier: EPL-2.0

package downmix

import (
	"fmt"
	"strings"
)

// Strategy selects one of the downmix functions.
type Strategy int

const (
	StrategySimple Strategy = iota
	StrategyPanning
	StrategyPanningFast
)

var strategyNames = [...]string{
	StrategySimple:      "simple",
	StrategyPanning:     "panning",
	StrategyPanningFast: "panning-fast",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Func returns the mapping function for s. Unknown values fall back to Simple.
func (s Strategy) Func() Func {
	switch s {
	case StrategyPanning:
		return Panning
	case StrategyPanningFast:
		return PanningFast
	default:
		return Simple
	}
}

// Apply maps in onto out with the strategy's function.
func (s Strategy) Apply(in, out []float32) {
	switch s {
	case StrategyPanning:
		Panning(in, out)
	case StrategyPanningFast:
		PanningFast(in, out)
	default:
		Simple(in, out)
	}
}

// ParseStrategy resolves a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return StrategySimple, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
