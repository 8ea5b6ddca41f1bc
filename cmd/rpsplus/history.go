package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/rpsplus/internal/history"
)

// HistoryCmd lists matches from a history directory
type HistoryCmd struct {
	Dir  string `kong:"arg,name='dir',help='History directory written by the server'"`
	JSON bool   `kong:"help='Emit raw JSON records instead of a table'"`
	Last int    `kong:"default='0',help='Show only the last N matches (0 = all)'"`
}

func (c *HistoryCmd) Run() error {
	records, err := history.Read(c.Dir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no matches recorded")
		return nil
	}

	if c.Last > 0 && len(records) > c.Last {
		records = records[len(records)-c.Last:]
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, rec := range records {
		fmt.Printf("%s  %s  %d-%d  %s\n",
			rec.MatchID,
			rec.FinishedAt.Format("2006-01-02 15:04:05"),
			rec.UserScore, rec.BotScore,
			rec.Result)
		for _, round := range rec.Rounds {
			if round.UserMove == "" {
				fmt.Printf("  round %d: wasted\n", round.Round)
				continue
			}
			fmt.Printf("  round %d: %s vs %s -> %s\n", round.Round, round.UserMove, round.BotMove, round.Winner)
		}
	}
	return nil
}
