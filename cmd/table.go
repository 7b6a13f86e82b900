package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/civtrack/goldwatch/renderer"
	"github.com/civtrack/goldwatch/turns"
	"github.com/google/subcommands"
)

type tableCmd struct {
	logDir string
	turn   int
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "show the trade table as of a turn" }
func (*tableCmd) Usage() string {
	return `table [-t <turn>] [-log-dir <dir>]

  Prints the trade table as of the given turn, or the latest closed turn.

Usage Examples:
# What did the ledger look like back on turn 42?
$ gw table -t 42
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.turn, "t", 0, "turn to report on (default: latest closed turn)")
	f.StringVar(&c.logDir, "log-dir", "", "game log directory (defaults to the game's own location)")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.logDir != "" {
		cfg.LogDir = c.logDir
	}

	ledger, err := replayLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.LatestTableReport()
	if c.turn > 0 {
		report = ledger.TableReport(turns.Turn(c.turn))
	}
	printMarkdown(renderer.Table(report))
	return subcommands.ExitSuccess
}
