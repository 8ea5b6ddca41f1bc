package history

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func sampleRecord(id string) Record {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Record{
		MatchID:    id,
		StartedAt:  now,
		FinishedAt: now.Add(time.Minute),
		Rounds: []Round{
			{Round: 1, UserMove: "rock", BotMove: "scissors", Winner: "user"},
			{Round: 2, UserMove: "bomb", BotMove: "paper", Winner: "user"},
			{Round: 3, UserMove: "paper", BotMove: "bomb", Winner: "bot"},
		},
		UserScore: 2,
		BotScore:  1,
		Result:    "User wins",
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, testLogger())
	require.NoError(t, err)

	require.NoError(t, r.Append(sampleRecord("m1")))
	require.NoError(t, r.Append(sampleRecord("m2")))

	records, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m1", records[0].MatchID)
	assert.Equal(t, "m2", records[1].MatchID)
	assert.Len(t, records[0].Rounds, 3)
	assert.Equal(t, "User wins", records[0].Result)
	assert.Equal(t, 2, r.Count())
}

func TestIndexSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, testLogger())
	require.NoError(t, err)
	require.NoError(t, r.Append(sampleRecord("m1")))

	reopened, err := NewRecorder(dir, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Count())

	require.NoError(t, reopened.Append(sampleRecord("m2")))
	assert.Equal(t, 2, reopened.Count())
}

func TestReadEmptyDir(t *testing.T) {
	records, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
}
