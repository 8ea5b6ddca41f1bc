package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Server   ServerCmd        `cmd:"" help:"Run the match server"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive match against a bot"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot matches and report statistics"`
	History  HistoryCmd       `cmd:"" help:"Inspect the recorded match history"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsplus"),
		kong.Description("Rock-Paper-Scissors-Plus: best-of-three RPS with a one-shot bomb"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
