package main

import (
	"time"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/bot"
	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/tui"
)

// PlayCmd runs an interactive local match in the terminal
type PlayCmd struct {
	Strategy string `kong:"default='bomber',help='Opposing bot strategy (bomber, uniform)'"`
	Rounds   int    `kong:"default='3',help='Rounds per match'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed for the bot (optional)'"`
	Strict   bool   `kong:"help='Invalid input wastes the round, as a referee would rule'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	policy, err := bot.ForName(c.Strategy, randutil.New(seed), logger)
	if err != nil {
		return err
	}

	match := game.NewMatch(policy, game.WithRoundLimit(c.Rounds))
	return tui.Run(match, c.Strict, logger)
}
