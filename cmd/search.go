package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/hodlcore/hodl"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for tokens by name, symbol or id" }
func (*searchCmd) Usage() string {
	return `hodl search [-limit <num_results>] <token>

  Searches the market data service for tokens matching the query and
  prints their names and ids.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 10, "Limit maximum search results")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	results, err := newClient().Search(query, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching tokens: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(hodl.SearchReport(results))
	return subcommands.ExitSuccess
}
