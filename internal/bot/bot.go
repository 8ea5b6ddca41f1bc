// Package bot provides move policies for the non-human side of a match.
// Policies are the one place randomness lives; everything they feed into is
// deterministic, so tests either seed the RNG or script the policy.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsplus/internal/game"
)

// ForName returns the named built-in policy backed by the given RNG.
// Known names are "bomber" and "uniform".
func ForName(name string, rng *rand.Rand, logger *log.Logger) (game.Policy, error) {
	switch name {
	case "bomber":
		return NewBomber(rng, logger), nil
	case "uniform":
		return NewUniform(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", name)
	}
}
