package bot

import "github.com/lox/rpsplus/internal/game"

// Scripted replays a fixed sequence of moves, then repeats the last one.
// It exists so tests and demos can force exact bot behaviour.
type Scripted struct {
	moves []game.Move
	index int
}

// NewScripted creates a Scripted policy from the given move sequence.
func NewScripted(moves ...game.Move) *Scripted {
	return &Scripted{moves: moves}
}

func (p *Scripted) ChooseMove(s game.State) game.Move {
	if len(p.moves) == 0 {
		return game.Rock
	}
	if p.index >= len(p.moves) {
		return p.moves[len(p.moves)-1]
	}
	m := p.moves[p.index]
	p.index++
	return m
}
