// Package agent provides scripted decision-makers over the engine's
// public state view. Agents construct only legal requests, so a runner
// can apply what they return without a retry loop.
package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/kmfrost/jaipur/engine"
)

// Agent chooses one action per turn from the public view. ChooseAction
// is pure apart from the supplied rng; implementations hold no game
// state between calls. A live, non-terminated view always admits at
// least one legal action, and agents must return one.
type Agent interface {
	Name() string
	ChooseAction(v engine.StateView, rng *rand.Rand) engine.Action
}

// New returns the named agent. Known names: "random", "greedy".
func New(name string) (Agent, error) {
	switch name {
	case "random":
		return Random{}, nil
	case "greedy":
		return Greedy{}, nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

// sampleIndices picks k distinct values from [0, n) in random order.
func sampleIndices(rng *rand.Rand, n, k int) []uint8 {
	pool := make([]uint8, n)
	for i := range pool {
		pool[i] = uint8(i)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
