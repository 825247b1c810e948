// Package cmd implements the CLI application to report on a crypto
// portfolio.
package cmd

import (
	"flag"

	"github.com/google/subcommands"

	"github.com/hodlcore/hodl"
	"github.com/hodlcore/hodl/cmc"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&folioCmd{}, "report")
	c.Register(&searchCmd{}, "market")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiBase = flag.String("api-base", cmc.DefaultBaseURL, "Base URL of the market data API")

// newClient is the single place constructing the market data client; every
// subcommand receives it from here rather than reaching for a global API.
func newClient() hodl.MarketDataClient {
	return cmc.NewClient(*apiBase)
}
