package game

import (
	"fmt"
	"strings"
)

// Validation is the structured verdict for a raw move submission. It is
// plain data so callers can give distinct feedback for "not a real move"
// versus "bomb already spent".
type Validation struct {
	Valid  bool   `json:"valid"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

// Validate checks a raw user submission against the current state. It never
// returns an error: invalid input is a reported game event, not a fault.
func Validate(raw string, state *State) Validation {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	move, ok := ParseMove(normalized)
	if !ok {
		return Validation{
			Move:   normalized,
			Reason: fmt.Sprintf("invalid move %q, valid moves: rock, paper, scissors, bomb", normalized),
		}
	}

	if move == Bomb && !state.CanUseBomb(PlayerUser) {
		return Validation{
			Move:   move.String(),
			Reason: "you have already used your bomb",
		}
	}

	return Validation{
		Valid:  true,
		Move:   move.String(),
		Reason: "valid move",
	}
}
