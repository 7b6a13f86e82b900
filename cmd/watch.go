package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/civlog"
	"github.com/civtrack/goldwatch/renderer"
	"github.com/google/subcommands"
)

type watchCmd struct {
	logDir string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow the running game's logs and show live standings" }
func (*watchCmd) Usage() string {
	return `watch [-log-dir <dir>]

  Tails the game's log files and reprints the trade table every time a deal,
  a name resolution, or a stats row lands. Runs until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.logDir, "log-dir", "", "game log directory (defaults to the game's own location)")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.logDir != "" {
		cfg.LogDir = c.logDir
	}

	ledger := goldwatch.NewLedger(cfg.ledgerConfig())
	feed := civlog.NewFeed(ledger)

	// the feed loop is the ledger's single dispatcher, so rendering from
	// the listener is safe: it only reads
	ledger.RegisterListener(func() {
		fmt.Print("\033[2J\033[H")
		printMarkdown(renderer.Table(ledger.LatestTableReport()))
	})

	fmt.Printf("Using log files from directory %s\n", cfg.LogDir)
	if err := feed.Run(ctx, cfg.LogDir); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error watching logs: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
