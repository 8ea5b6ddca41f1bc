package game

import (
	"fmt"
	"strings"
)

// Move represents one of the four legal moves
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Bomb
)

// Moves lists all legal moves in canonical order
var Moves = []Move{Rock, Paper, Scissors, Bomb}

// String returns the canonical lowercase name of the move
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	case Bomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// ParseMove converts raw user input to a Move. Input is trimmed and
// case-insensitive. The second return value is false for anything that is
// not one of the four move names.
func ParseMove(raw string) (Move, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rock":
		return Rock, true
	case "paper":
		return Paper, true
	case "scissors":
		return Scissors, true
	case "bomb":
		return Bomb, true
	default:
		return Rock, false
	}
}

// MustParseMove is ParseMove for inputs already known to be valid, such as
// the move field of a successful Validation. It panics on anything else,
// which indicates a caller contract breach rather than a game event.
func MustParseMove(raw string) Move {
	m, ok := ParseMove(raw)
	if !ok {
		panic(fmt.Sprintf("game: invalid move %q", raw))
	}
	return m
}

// Outcome identifies the winner of a single round
type Outcome int

const (
	// OutcomeDraw means neither side won the round
	OutcomeDraw Outcome = iota
	// OutcomeUser means the user won the round
	OutcomeUser
	// OutcomeBot means the bot won the round
	OutcomeBot
)

// String returns the wire name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUser:
		return "user"
	case OutcomeBot:
		return "bot"
	default:
		return "draw"
	}
}

// Result is the match-level winner designation derived from final scores
type Result int

const (
	ResultDraw Result = iota
	ResultUser
	ResultBot
)

// String returns the display form of the result
func (r Result) String() string {
	switch r {
	case ResultUser:
		return "User wins"
	case ResultBot:
		return "Bot wins"
	default:
		return "Draw"
	}
}
