package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/hodlcore/hodl/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the static completion tree for the hodl binary.
// It returns immediately unless invoked by the shell completion hook.
func completion() {
	sortKeys := predict.Set{
		"rank", "coin", "amount", "price", "value",
		"percents", "volume", "pct", "pct_day", "pct_week",
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"folio": {
				Flags: map[string]complete.Predictor{
					"s": sortKeys,
					"r": predict.Nothing,
					"p": predict.Nothing,
					"d": predict.Something,
					"c": predict.Set{"USD", "EUR", "GBP", "BTC"},
				},
				Args: predict.Files("*.json"),
			},
			"search": {
				Flags: map[string]complete.Predictor{
					"limit": predict.Something,
				},
			},
		},
	}
	c.Complete("hodl")
}
