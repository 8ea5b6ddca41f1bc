package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestBomberNeverBombsWhenSpent(t *testing.T) {
	b := NewBomber(randutil.New(1), testLogger())
	state := game.State{BotBombUsed: true}

	for round := 0; round < 5; round++ {
		state.RoundNumber = round
		for i := 0; i < 500; i++ {
			if b.ChooseMove(state) == game.Bomb {
				t.Fatalf("bomber played a second bomb at round %d", round)
			}
		}
	}
}

func TestBomberSecondRoundBombRate(t *testing.T) {
	b := NewBomber(randutil.New(2), testLogger())
	state := game.State{RoundNumber: 1}

	bombs := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		if b.ChooseMove(state) == game.Bomb {
			bombs++
		}
	}

	// Bombs half the time in round two, plus the late-bomb path when the
	// coin flip misses: 0.5 + 0.5*0.3*0.25 = 0.5375 expected.
	rate := float64(bombs) / draws
	if rate < 0.45 || rate > 0.63 {
		t.Errorf("second-round bomb rate %.3f outside expected band", rate)
	}
}

func TestBomberLateBombRate(t *testing.T) {
	b := NewBomber(randutil.New(3), testLogger())
	state := game.State{RoundNumber: 2}

	bombs := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		if b.ChooseMove(state) == game.Bomb {
			bombs++
		}
	}

	// 0.3 chance of the four-move candidate set, then 1-in-4: 0.075 expected
	rate := float64(bombs) / draws
	if rate < 0.04 || rate > 0.12 {
		t.Errorf("late bomb rate %.3f outside expected band", rate)
	}
}

func TestUniformNeverBombs(t *testing.T) {
	u := NewUniform(randutil.New(4))
	for i := 0; i < 1000; i++ {
		if u.ChooseMove(game.State{}) == game.Bomb {
			t.Fatal("uniform policy must never bomb")
		}
	}
}

func TestScriptedReplaysAndRepeats(t *testing.T) {
	p := NewScripted(game.Rock, game.Bomb)
	want := []game.Move{game.Rock, game.Bomb, game.Bomb, game.Bomb}
	for i, w := range want {
		if got := p.ChooseMove(game.State{}); got != w {
			t.Errorf("move %d = %s, want %s", i, got, w)
		}
	}

	empty := NewScripted()
	if got := empty.ChooseMove(game.State{}); got != game.Rock {
		t.Errorf("empty script should fall back to rock, got %s", got)
	}
}

func TestForName(t *testing.T) {
	rng := randutil.New(5)
	if _, err := ForName("bomber", rng, testLogger()); err != nil {
		t.Errorf("bomber: %v", err)
	}
	if _, err := ForName("uniform", rng, testLogger()); err != nil {
		t.Errorf("uniform: %v", err)
	}
	if _, err := ForName("gpt", rng, testLogger()); err == nil {
		t.Error("unknown strategy should error")
	}
}
