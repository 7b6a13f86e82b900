package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/renderer"
	"github.com/civtrack/goldwatch/turns"
	"github.com/google/subcommands"
)

type chartCmd struct {
	logDir string
	turn   int
	player string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot each player's net position over time" }
func (*chartCmd) Usage() string {
	return `chart [-t <turn>] [-p <player>] [-log-dir <dir>]

  Plots one chart per player, tracking their net trade position turn by turn.

Usage Examples:
# Who has been ahead since the start of the game?
$ gw chart
# Just Rome, up to turn 80.
$ gw chart -t 80 -p ROME
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.turn, "t", 0, "last turn to plot (default: latest closed turn)")
	f.StringVar(&c.player, "p", "", "only plot players whose name contains this")
	f.StringVar(&c.logDir, "log-dir", "", "game log directory (defaults to the game's own location)")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.logDir != "" {
		cfg.LogDir = c.logDir
	}

	ledger, err := replayLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	series := ledger.LatestNetSeriesReport()
	if c.turn > 0 {
		series = ledger.NetSeriesReport(turns.Turn(c.turn))
	}
	if c.player != "" {
		series = slices.DeleteFunc(series, func(s goldwatch.NetSeries) bool {
			return !strings.Contains(strings.ToLower(s.Name), strings.ToLower(c.player))
		})
	}
	fmt.Println(renderer.Chart(series))
	return subcommands.ExitSuccess
}
