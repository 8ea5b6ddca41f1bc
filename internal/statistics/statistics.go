// Package statistics aggregates outcomes across simulated matches.
package statistics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lox/rpsplus/internal/game"
)

// MatchResult summarizes one completed match for aggregation.
type MatchResult struct {
	Result     game.Result
	Rounds     int
	UserBombed bool
	BotBombed  bool
}

// Statistics tracks aggregate results for a batch of matches. It is not
// safe for concurrent use; workers keep their own and Merge at the end.
type Statistics struct {
	Matches      int
	UserWins     int
	BotWins      int
	Draws        int
	RoundsPlayed int
	UserBombs    int
	BotBombs     int
}

// Record adds one match result to the totals.
func (s *Statistics) Record(r MatchResult) {
	s.Matches++
	s.RoundsPlayed += r.Rounds
	switch r.Result {
	case game.ResultUser:
		s.UserWins++
	case game.ResultBot:
		s.BotWins++
	default:
		s.Draws++
	}
	if r.UserBombed {
		s.UserBombs++
	}
	if r.BotBombed {
		s.BotBombs++
	}
}

// Merge folds another set of totals into this one.
func (s *Statistics) Merge(o Statistics) {
	s.Matches += o.Matches
	s.UserWins += o.UserWins
	s.BotWins += o.BotWins
	s.Draws += o.Draws
	s.RoundsPlayed += o.RoundsPlayed
	s.UserBombs += o.UserBombs
	s.BotBombs += o.BotBombs
}

// UserWinRate returns the fraction of matches won by the user side.
func (s *Statistics) UserWinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.UserWins) / float64(s.Matches)
}

// WilsonInterval returns a confidence interval on the user-side win rate
// using the Wilson score method, which behaves sensibly at the extremes
// where the normal approximation does not. z is the standard normal
// quantile, e.g. 1.96 for 95%.
func (s *Statistics) WilsonInterval(z float64) (low, high float64) {
	n := float64(s.Matches)
	if n == 0 {
		return 0, 0
	}
	p := s.UserWinRate()
	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return center - margin, center + margin
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "matches: %d\n", s.Matches)
	if s.Matches == 0 {
		return b.String()
	}
	n := float64(s.Matches)
	fmt.Fprintf(&b, "user wins: %d (%.1f%%)\n", s.UserWins, 100*float64(s.UserWins)/n)
	fmt.Fprintf(&b, "bot wins:  %d (%.1f%%)\n", s.BotWins, 100*float64(s.BotWins)/n)
	fmt.Fprintf(&b, "draws:     %d (%.1f%%)\n", s.Draws, 100*float64(s.Draws)/n)
	low, high := s.WilsonInterval(1.96)
	fmt.Fprintf(&b, "user win rate 95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(&b, "rounds/match: %.2f\n", float64(s.RoundsPlayed)/n)
	fmt.Fprintf(&b, "bombs: user %.1f%%, bot %.1f%%\n", 100*float64(s.UserBombs)/n, 100*float64(s.BotBombs)/n)
	return b.String()
}
