package game

import (
	"strings"
	"testing"
)

func TestValidateAcceptsTrimmedMixedCase(t *testing.T) {
	var s State
	v := Validate("  ROCK ", &s)
	if !v.Valid {
		t.Fatalf("expected valid, got reason %q", v.Reason)
	}
	if v.Move != "rock" {
		t.Errorf("move normalized to %q, want \"rock\"", v.Move)
	}
}

func TestValidateRejectsUnknownMove(t *testing.T) {
	var s State
	v := Validate("lizard", &s)
	if v.Valid {
		t.Fatal("lizard should not be a valid move")
	}
	for _, name := range []string{"rock", "paper", "scissors", "bomb"} {
		if !strings.Contains(v.Reason, name) {
			t.Errorf("reason %q should name valid move %s", v.Reason, name)
		}
	}
}

func TestValidateRejectsSpentBomb(t *testing.T) {
	s := State{UserBombUsed: true}
	v := Validate("bomb", &s)
	if v.Valid {
		t.Fatal("spent bomb should be rejected")
	}
	if !strings.Contains(v.Reason, "already used") {
		t.Errorf("reason %q should mention prior use", v.Reason)
	}

	// The bot's spent bomb does not block the user's
	s = State{BotBombUsed: true}
	if v := Validate("bomb", &s); !v.Valid {
		t.Errorf("user bomb should still be playable, got reason %q", v.Reason)
	}
}

func TestValidateEmptyInput(t *testing.T) {
	var s State
	if v := Validate("   ", &s); v.Valid {
		t.Error("whitespace-only input should be invalid")
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range Moves {
		got, ok := ParseMove(strings.ToUpper(m.String()))
		if !ok || got != m {
			t.Errorf("ParseMove(%q) = (%s, %v), want (%s, true)", strings.ToUpper(m.String()), got, ok, m)
		}
	}
	if _, ok := ParseMove("spock"); ok {
		t.Error("ParseMove should reject unknown names")
	}
}

func TestMustParseMovePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseMove should panic on invalid input")
		}
	}()
	MustParseMove("lizard")
}
