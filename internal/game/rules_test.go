package game

import "testing"

func TestResolveRoundEqualMovesDraw(t *testing.T) {
	for _, m := range Moves {
		if got := ResolveRound(m, m); got != OutcomeDraw {
			t.Errorf("ResolveRound(%s, %s) = %s, want draw", m, m, got)
		}
	}
}

func TestResolveRoundBombOverride(t *testing.T) {
	for _, m := range []Move{Rock, Paper, Scissors} {
		if got := ResolveRound(Bomb, m); got != OutcomeUser {
			t.Errorf("ResolveRound(bomb, %s) = %s, want user", m, got)
		}
		if got := ResolveRound(m, Bomb); got != OutcomeBot {
			t.Errorf("ResolveRound(%s, bomb) = %s, want bot", m, got)
		}
	}
	if got := ResolveRound(Bomb, Bomb); got != OutcomeDraw {
		t.Errorf("ResolveRound(bomb, bomb) = %s, want draw", got)
	}
}

func TestResolveRoundStandardDominance(t *testing.T) {
	tests := []struct {
		userMove Move
		botMove  Move
		want     Outcome
	}{
		{Rock, Scissors, OutcomeUser},
		{Scissors, Rock, OutcomeBot},
		{Scissors, Paper, OutcomeUser},
		{Paper, Scissors, OutcomeBot},
		{Paper, Rock, OutcomeUser},
		{Rock, Paper, OutcomeBot},
	}
	for _, tt := range tests {
		if got := ResolveRound(tt.userMove, tt.botMove); got != tt.want {
			t.Errorf("ResolveRound(%s, %s) = %s, want %s", tt.userMove, tt.botMove, got, tt.want)
		}
	}
}

// Every unordered pair of distinct non-bomb moves must produce exactly one
// winner, and swapping the sides must mirror it.
func TestResolveRoundAntiSymmetric(t *testing.T) {
	standard := []Move{Rock, Paper, Scissors}
	for _, m1 := range standard {
		for _, m2 := range standard {
			if m1 == m2 {
				continue
			}
			forward := ResolveRound(m1, m2)
			reverse := ResolveRound(m2, m1)

			if forward == OutcomeDraw || reverse == OutcomeDraw {
				t.Errorf("distinct moves %s vs %s resolved to a draw", m1, m2)
			}
			if forward == OutcomeUser && reverse != OutcomeBot {
				t.Errorf("ResolveRound(%s, %s) = %s but ResolveRound(%s, %s) = %s", m1, m2, forward, m2, m1, reverse)
			}
			if forward == OutcomeBot && reverse != OutcomeUser {
				t.Errorf("ResolveRound(%s, %s) = %s but ResolveRound(%s, %s) = %s", m1, m2, forward, m2, m1, reverse)
			}
		}
	}
}
