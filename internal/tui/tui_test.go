package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsplus/internal/bot"
	"github.com/lox/rpsplus/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestModel(botMoves ...game.Move) *Model {
	match := game.NewMatch(bot.NewScripted(botMoves...))
	return New(match, false, testLogger())
}

func logText(m *Model) string {
	return strings.Join(m.lines, "\n")
}

func TestSubmitPlaysRound(t *testing.T) {
	m := newTestModel(game.Scissors)

	cmd := m.submit("rock")
	assert.Nil(t, cmd)

	out := logText(m)
	assert.Contains(t, out, "you played rock, bot played scissors")
	assert.Contains(t, out, "You take the round.")
	assert.Equal(t, 1, m.match.Snapshot().UserScore)
}

func TestSubmitInvalidMove(t *testing.T) {
	m := newTestModel(game.Rock)

	m.submit("lizard")
	assert.Contains(t, logText(m), "invalid move")
	assert.Equal(t, 0, m.match.Snapshot().RoundNumber, "lenient mode must not waste the round")
}

func TestSubmitInvalidWastesRoundWhenStrict(t *testing.T) {
	match := game.NewMatch(bot.NewScripted(game.Rock))
	m := New(match, true, testLogger())

	m.submit("lizard")
	assert.Contains(t, logText(m), "wasted")
	assert.Equal(t, 1, match.Snapshot().RoundNumber)
}

func TestGameOverAndPlayAgain(t *testing.T) {
	m := newTestModel(game.Scissors, game.Scissors, game.Scissors)

	for i := 0; i < game.DefaultRoundLimit; i++ {
		m.submit("rock")
	}
	out := logText(m)
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "User wins")
	require.True(t, m.match.Snapshot().GameOver)

	// "y" resets the match in place
	cmd := m.submit("y")
	assert.Nil(t, cmd)
	assert.Equal(t, game.State{}, m.match.Snapshot())

	// After the next match ends, anything else quits
	for i := 0; i < game.DefaultRoundLimit; i++ {
		m.submit("rock")
	}
	cmd = m.submit("n")
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(game.Rock)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, model.(*Model).quitting)
}

func TestWindowSizeInitializes(t *testing.T) {
	m := newTestModel(game.Rock)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, model.(*Model).initialized)
}
