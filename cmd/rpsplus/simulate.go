package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/simulator"
)

// SimulateCmd plays bot-vs-bot matches and reports aggregate statistics
type SimulateCmd struct {
	Matches int    `kong:"default='10000',help='Number of matches to play'"`
	Workers int    `kong:"default='0',help='Worker goroutines (0 = GOMAXPROCS)'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed for the run (optional)'"`
	User    string `kong:"default='bomber',help='Strategy playing the user seat'"`
	Bot     string `kong:"default='uniform',help='Strategy playing the bot seat'"`
	Rounds  int    `kong:"default='3',help='Rounds per match'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	sim := simulator.New(simulator.Config{
		Matches:      c.Matches,
		Workers:      workers,
		Seed:         seed,
		UserStrategy: c.User,
		BotStrategy:  c.Bot,
		RoundLimit:   c.Rounds,
	}, logger)

	ctx := shared.SetupSignalHandler(logger)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %s, %d rounds/match, seed %d, %s elapsed\n\n",
		c.User, c.Bot, c.Rounds, seed, time.Since(start).Round(time.Millisecond))
	fmt.Print(stats.Summary())
	return nil
}
