package game

// DefaultRoundLimit is the number of rounds in a standard match.
const DefaultRoundLimit = 3

// Player identifiers used for bomb bookkeeping. Anything else is treated as
// a player that cannot use a bomb, never as an error.
const (
	PlayerUser = "user"
	PlayerBot  = "bot"
)

// State holds the mutable state of one match. The zero value is a fresh
// match: round zero, no scores, both bombs available.
//
// State methods mutate in place. Match owns the canonical State and hands
// out value copies; nothing outside this package should mutate one that it
// did not create.
type State struct {
	RoundNumber  int
	UserScore    int
	BotScore     int
	UserBombUsed bool
	BotBombUsed  bool
	GameOver     bool
}

// CanUseBomb reports whether the given player still has a bomb available.
// Unknown player identifiers cannot use bombs.
func (s *State) CanUseBomb(player string) bool {
	switch player {
	case PlayerUser:
		return !s.UserBombUsed
	case PlayerBot:
		return !s.BotBombUsed
	}
	return false
}

// MarkBombUsed records bomb consumption for the player if move is Bomb.
// Any other move is a no-op. Idempotent: the flag only ever goes from
// false to true.
func (s *State) MarkBombUsed(player string, move Move) {
	if move != Bomb {
		return
	}
	switch player {
	case PlayerUser:
		s.UserBombUsed = true
	case PlayerBot:
		s.BotBombUsed = true
	}
}

// ApplyOutcome credits the round winner with one point. Draws credit
// neither side.
func (s *State) ApplyOutcome(o Outcome) {
	switch o {
	case OutcomeUser:
		s.UserScore++
	case OutcomeBot:
		s.BotScore++
	}
}

// AdvanceRound increments the round counter and recomputes the game-over
// flag against the given round limit. Called exactly once per resolved or
// wasted round, after bombs and scores have been recorded.
func (s *State) AdvanceRound(limit int) {
	s.RoundNumber++
	s.GameOver = s.IsGameOver(limit)
}

// IsGameOver reports whether the round counter has reached the limit.
func (s *State) IsGameOver(limit int) bool {
	return s.RoundNumber >= limit
}

// FinalResult compares cumulative scores. Before the match ends it simply
// reports the provisional leader.
func (s *State) FinalResult() Result {
	switch {
	case s.UserScore > s.BotScore:
		return ResultUser
	case s.BotScore > s.UserScore:
		return ResultBot
	}
	return ResultDraw
}
