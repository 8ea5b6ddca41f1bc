package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsplus/internal/game"
)

// Bomb heuristic parameters. The bot favours bombing in the second round
// and otherwise keeps the bomb as a low-probability surprise.
const (
	secondRoundBombChance = 0.5
	lateBombChance        = 0.3
)

// Bomber is the default strategy: if its bomb is unused and the second
// round is about to be played, it bombs half the time. Otherwise it picks
// uniformly from rock/paper/scissors, widening the candidate set to include
// the bomb 30% of the time while the bomb is still available.
type Bomber struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewBomber creates a Bomber backed by the given RNG.
func NewBomber(rng *rand.Rand, logger *log.Logger) *Bomber {
	return &Bomber{rng: rng, logger: logger.WithPrefix("bot")}
}

func (b *Bomber) ChooseMove(s game.State) game.Move {
	if !s.BotBombUsed && s.RoundNumber == 1 && b.rng.Float64() < secondRoundBombChance {
		b.logger.Debug("playing second-round bomb", "round", s.RoundNumber)
		return game.Bomb
	}

	candidates := []game.Move{game.Rock, game.Paper, game.Scissors}
	if !s.BotBombUsed && b.rng.Float64() < lateBombChance {
		candidates = append(candidates, game.Bomb)
	}

	move := candidates[b.rng.IntN(len(candidates))]
	b.logger.Debug("chose move", "round", s.RoundNumber, "move", move, "bombAvailable", !s.BotBombUsed)
	return move
}

// Uniform picks uniformly from rock/paper/scissors and never bombs. Useful
// as a baseline opponent in simulations.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a Uniform policy backed by the given RNG.
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

func (u *Uniform) ChooseMove(s game.State) game.Move {
	standard := []game.Move{game.Rock, game.Paper, game.Scissors}
	return standard[u.rng.IntN(len(standard))]
}
