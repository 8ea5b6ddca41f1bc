// Package history records completed matches to disk as JSON lines.
package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFile   = "matches.jsonl"
	indexFile = "index.json"
)

// Round is one resolved round as written to the history log. Wasted rounds
// appear with empty moves and winner "none".
type Round struct {
	Round    int    `json:"round"`
	UserMove string `json:"user_move,omitempty"`
	BotMove  string `json:"bot_move,omitempty"`
	Winner   string `json:"winner"`
}

// Record is one completed match.
type Record struct {
	MatchID    string    `json:"match_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Rounds     []Round   `json:"rounds"`
	UserScore  int       `json:"user_score"`
	BotScore   int       `json:"bot_score"`
	Result     string    `json:"result"`
}

// Index summarizes the log so tooling can skim it without scanning every
// line. It is rewritten atomically after each append.
type Index struct {
	Matches     int       `json:"matches"`
	LastMatchID string    `json:"last_match_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recorder appends match records to a JSONL file under dir. Safe for
// concurrent use.
type Recorder struct {
	dir    string
	logger *log.Logger

	mu    sync.Mutex
	index Index
}

// NewRecorder creates the history directory if needed and loads any
// existing index.
func NewRecorder(dir string, logger *log.Logger) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	r := &Recorder{dir: dir, logger: logger.WithPrefix("history")}
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err == nil {
		if err := json.Unmarshal(data, &r.index); err != nil {
			// A corrupt index is rebuilt from zero rather than refusing to
			// record; the log itself is the source of truth.
			r.logger.Warn("ignoring corrupt history index", "error", err)
			r.index = Index{}
		}
	}
	return r, nil
}

// Append writes one record to the log and refreshes the index.
func (r *Recorder) Append(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(r.dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	r.index.Matches++
	r.index.LastMatchID = rec.MatchID
	r.index.UpdatedAt = rec.FinishedAt
	if err := r.writeIndex(); err != nil {
		return err
	}

	r.logger.Debug("recorded match", "matchID", rec.MatchID, "result", rec.Result)
	return nil
}

// Count returns the number of matches recorded so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index.Matches
}

// writeIndex rewrites the index atomically: temp file in the same
// directory, then rename, so readers see either the old or the new index,
// never a partial one.
func (r *Recorder) writeIndex() error {
	data, err := json.MarshalIndent(r.index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, indexFile+".tmp.*")
	if err != nil {
		return fmt.Errorf("create index temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close index temp file: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(r.dir, indexFile)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename index: %w", err)
	}
	return nil
}

// Read loads every record from the log, oldest first.
func Read(dir string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Join(dir, logFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}

	var records []Record
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return records, fmt.Errorf("decode record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return records, nil
}
