package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/civtrack/goldwatch/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and exits; in a normal run it
// is a no-op.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{
			Flags: map[string]complete.Predictor{
				"log-dir": predict.Dirs("*"),
				"t":       predict.Nothing,
			},
		}
	}
	complete.Complete("gw", &complete.Command{Sub: sub})
}
