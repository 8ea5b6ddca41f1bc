// Package simulator runs batches of bot-vs-bot matches for strategy
// comparison.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rpsplus/internal/bot"
	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/statistics"
)

// Config controls a simulation run. Both sides are bot policies; the
// "user" side is whatever policy plays the user seat.
type Config struct {
	Matches      int
	Workers      int
	Seed         int64
	UserStrategy string
	BotStrategy  string
	RoundLimit   int
}

// Simulator runs matches across a pool of workers, each with its own
// deterministic RNG derived from the run seed.
type Simulator struct {
	cfg    Config
	logger *log.Logger
}

// New creates a Simulator.
func New(cfg Config, logger *log.Logger) *Simulator {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.RoundLimit < 1 {
		cfg.RoundLimit = game.DefaultRoundLimit
	}
	return &Simulator{cfg: cfg, logger: logger.WithPrefix("simulator")}
}

// Run plays all configured matches and returns the aggregate statistics.
func (s *Simulator) Run(ctx context.Context) (statistics.Statistics, error) {
	var total statistics.Statistics

	g, ctx := errgroup.WithContext(ctx)
	partials := make([]statistics.Statistics, s.cfg.Workers)

	per := s.cfg.Matches / s.cfg.Workers
	extra := s.cfg.Matches % s.cfg.Workers

	for w := 0; w < s.cfg.Workers; w++ {
		count := per
		if w < extra {
			count++
		}
		if count == 0 {
			continue
		}
		w := w
		g.Go(func() error {
			// Each worker derives its seed from the run seed so runs are
			// reproducible regardless of scheduling.
			rng := randutil.New(s.cfg.Seed + int64(w)*1_000_003)

			userPolicy, err := bot.ForName(s.cfg.UserStrategy, rng, s.logger)
			if err != nil {
				return fmt.Errorf("user strategy: %w", err)
			}
			botPolicy, err := bot.ForName(s.cfg.BotStrategy, rng, s.logger)
			if err != nil {
				return fmt.Errorf("bot strategy: %w", err)
			}

			for i := 0; i < count; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				partials[w].Record(playMatch(userPolicy, botPolicy, s.cfg.RoundLimit))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, err
	}
	for _, p := range partials {
		total.Merge(p)
	}
	s.logger.Info("simulation complete", "matches", total.Matches, "userWinRate", total.UserWinRate())
	return total, nil
}

// playMatch drives one match to completion. The user-side policy sees the
// state mirrored so that "its" bomb flag is the one it actually owns.
func playMatch(userPolicy, botPolicy game.Policy, roundLimit int) statistics.MatchResult {
	m := game.NewMatch(botPolicy, game.WithRoundLimit(roundLimit))

	for {
		snap := m.Snapshot()
		if snap.GameOver {
			break
		}
		userMove := userPolicy.ChooseMove(mirror(snap))
		if _, err := m.Play(userMove); err != nil {
			break
		}
	}

	final := m.Snapshot()
	return statistics.MatchResult{
		Result:     final.FinalResult(),
		Rounds:     final.RoundNumber,
		UserBombed: final.UserBombUsed,
		BotBombed:  final.BotBombUsed,
	}
}

// mirror swaps the user and bot sides of a snapshot.
func mirror(s game.State) game.State {
	return game.State{
		RoundNumber:  s.RoundNumber,
		UserScore:    s.BotScore,
		BotScore:     s.UserScore,
		UserBombUsed: s.BotBombUsed,
		BotBombUsed:  s.UserBombUsed,
		GameOver:     s.GameOver,
	}
}
