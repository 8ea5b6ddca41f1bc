package game

import "errors"

// ErrMatchOver is returned by Match.Play and Match.WasteRound once the
// round limit has been reached. Staying within the limit is a session
// concern, so the guard lives on the Match handle rather than deep in the
// state operations.
var ErrMatchOver = errors.New("match is over")

// Policy chooses the bot's move for the round about to be played. It
// receives a snapshot of the current state, so implementations can react to
// round number and bomb availability but cannot mutate the match.
type Policy interface {
	ChooseMove(s State) Move
}

// Match is the explicit state handle for one match. It owns the canonical
// State and is its only mutator, which makes concurrent matches trivially
// independent: one Match per session, no shared state. A Match itself is
// not safe for concurrent use.
type Match struct {
	policy Policy
	state  State
	limit  int
}

// MatchOption configures a Match at construction.
type MatchOption func(*Match)

// WithRoundLimit overrides the default three-round limit.
func WithRoundLimit(limit int) MatchOption {
	return func(m *Match) {
		if limit > 0 {
			m.limit = limit
		}
	}
}

// NewMatch creates a fresh match against the given bot policy.
func NewMatch(policy Policy, opts ...MatchOption) *Match {
	m := &Match{
		policy: policy,
		limit:  DefaultRoundLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RoundResult captures everything a caller needs to report one resolved
// round. State is a snapshot taken after resolution.
type RoundResult struct {
	UserMove Move
	BotMove  Move
	Winner   Outcome
	State    State
}

// Play resolves one round against the bot policy. The user move must
// already be validated and normalized; Play consumes bot-policy entropy to
// pick the opposing move.
//
// Resolution order is fixed: record bomb consumption for both sides, decide
// the winner, credit the score, advance the round, recompute game over.
// Bombs are recorded first because consumption affects future availability,
// not the round being played.
func (m *Match) Play(userMove Move) (RoundResult, error) {
	if m.state.GameOver {
		return RoundResult{}, ErrMatchOver
	}

	botMove := m.policy.ChooseMove(m.state)

	m.state.MarkBombUsed(PlayerUser, userMove)
	m.state.MarkBombUsed(PlayerBot, botMove)

	winner := ResolveRound(userMove, botMove)
	m.state.ApplyOutcome(winner)
	m.state.AdvanceRound(m.limit)

	return RoundResult{
		UserMove: userMove,
		BotMove:  botMove,
		Winner:   winner,
		State:    m.state,
	}, nil
}

// WasteRound burns a round without resolving one: no moves, no score
// change, no bomb consumption. Used by callers that treat invalid input as
// a forfeited round.
func (m *Match) WasteRound() (State, error) {
	if m.state.GameOver {
		return m.state, ErrMatchOver
	}
	m.state.AdvanceRound(m.limit)
	return m.state, nil
}

// Validate checks a raw user submission against the current state.
func (m *Match) Validate(raw string) Validation {
	return Validate(raw, &m.state)
}

// Snapshot returns a copy of the current state.
func (m *Match) Snapshot() State {
	return m.state
}

// RoundLimit returns the configured number of rounds.
func (m *Match) RoundLimit() int {
	return m.limit
}

// Reset discards all progress and returns the match to its initial state.
// The policy and round limit are kept.
func (m *Match) Reset() {
	m.state = State{}
}
