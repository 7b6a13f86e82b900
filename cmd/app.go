// Package cmd implements the CLI application that watches a game's trade
// logs.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/civtrack/goldwatch"
	"github.com/civtrack/goldwatch/civlog"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&watchCmd{},
	&replayCmd{},
	&tableCmd{},
	&chartCmd{},
	&topicCmd{},
	&assistCmd{},
}

// appConfig is the environment-driven configuration, overridable per
// command with flags.
type appConfig struct {
	LogDir       string  `env:"GOLDWATCH_LOG_DIR"`
	InterestRate float64 `env:"GOLDWATCH_INTEREST_RATE"`
}

// loadConfig reads the environment, falling back to defaults when unset or
// unparsable.
func loadConfig() appConfig {
	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		log.Printf("ignoring environment: %v", err)
		cfg = appConfig{}
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir()
	}
	return cfg
}

// defaultLogDir is where the game writes its logs.
func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "AppData", "Local", "Firaxis Games", "Sid Meier's Civilization VI", "Logs")
}

func (c appConfig) ledgerConfig() goldwatch.Config {
	cfg := goldwatch.DefaultConfig()
	if c.InterestRate > 1 {
		cfg.InterestRate = goldwatch.A(c.InterestRate)
	}
	return cfg
}

// replayLedger rebuilds the ledger from the logs as they stand now.
func replayLedger(c appConfig) (*goldwatch.Ledger, error) {
	ledger := goldwatch.NewLedger(c.ledgerConfig())
	feed := civlog.NewFeed(ledger)
	if err := feed.Replay(c.LogDir); err != nil {
		return nil, fmt.Errorf("could not replay logs in %q: %w", c.LogDir, err)
	}
	return ledger, nil
}
