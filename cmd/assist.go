package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/civtrack/goldwatch/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	logDir string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `assist [-log-dir <dir>] [prompt...]

  Start an interactive session with the AI assistant. The assistant can
  read the trade standings and per-player net history of the current game.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.logDir, "log-dir", "", "game log directory (defaults to the game's own location)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	cfg := loadConfig()
	if c.logDir != "" {
		cfg.LogDir = c.logDir
	}

	ledger, err := replayLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewScorekeeper(ledger))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
