package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunAccountsForEveryMatch(t *testing.T) {
	sim := New(Config{
		Matches:      250,
		Workers:      4,
		Seed:         42,
		UserStrategy: "bomber",
		BotStrategy:  "uniform",
	}, testLogger())

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 250, stats.Matches)
	assert.Equal(t, stats.Matches, stats.UserWins+stats.BotWins+stats.Draws)
	// Every match runs the full three rounds; nothing wastes rounds here
	assert.Equal(t, 750, stats.RoundsPlayed)
	// The uniform bot never bombs
	assert.Zero(t, stats.BotBombs)
}

func TestRunIsReproducible(t *testing.T) {
	cfg := Config{
		Matches:      100,
		Workers:      3,
		Seed:         7,
		UserStrategy: "bomber",
		BotStrategy:  "bomber",
	}

	a, err := New(cfg, testLogger()).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg, testLogger()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunUnknownStrategy(t *testing.T) {
	sim := New(Config{
		Matches:      10,
		Workers:      1,
		UserStrategy: "oracle",
		BotStrategy:  "uniform",
	}, testLogger())

	_, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{
		Matches:      1000,
		Workers:      2,
		UserStrategy: "uniform",
		BotStrategy:  "uniform",
	}, testLogger())

	_, err := sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
