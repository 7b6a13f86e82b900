package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/civtrack/goldwatch/renderer"
	"github.com/google/subcommands"
)

type replayCmd struct {
	logDir string
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "read the logs once and show the final standings" }
func (*replayCmd) Usage() string {
	return `replay [-log-dir <dir>]

  Reads the game's log files in one pass and prints the trade table as of
  the latest closed turn. Useful on a finished game.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.logDir, "log-dir", "", "game log directory (defaults to the game's own location)")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.logDir != "" {
		cfg.LogDir = c.logDir
	}

	ledger, err := replayLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Table(ledger.LatestTableReport()))
	return subcommands.ExitSuccess
}
