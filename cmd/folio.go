package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hodlcore/hodl"
	"github.com/hodlcore/hodl/renderer"
)

// folioCmd holds the flags for the 'folio' subcommand.
type folioCmd struct {
	sortBy   string
	reverse  bool
	percents bool
	decimals int
	currency string
}

func (*folioCmd) Name() string     { return "folio" }
func (*folioCmd) Synopsis() string { return "value a holdings file and print the portfolio report" }
func (*folioCmd) Usage() string {
	return `hodl folio [-s <key>] [-r] [-p] [-d <decimals>] [-c <currency>] PORTFOLIO

  Values each holding of the PORTFOLIO file (a JSON array of
  [symbol, balance] pairs) at current market prices and prints a sorted
  table with portfolio totals in the reporting currency and in BTC.
`
}

func (c *folioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortBy, "s", "", "sort by: rank, coin, amount, price, value, percents, volume, pct, pct_day, pct_week (default: value, or percents with -p)")
	f.BoolVar(&c.reverse, "r", false, "reverse sort, lowest value first")
	f.BoolVar(&c.percents, "p", false, "show percents of portfolio only (hide amounts and values)")
	f.IntVar(&c.decimals, "d", 2, "decimals for price and value columns (forced to 8 when the currency is BTC)")
	f.StringVar(&c.currency, "c", "USD", "reporting currency")
}

func (c *folioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a portfolio file is required.")
		return subcommands.ExitUsageError
	}

	currency, err := hodl.ParseCurrency(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	opts := hodl.TableOptions{
		Currency: currency,
		Reverse:  c.reverse,
		Percents: c.percents,
		Decimals: c.decimals,
	}
	if c.sortBy != "" {
		opts.SortBy, err = hodl.ParseSortKey(c.sortBy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	// reject a sort key unavailable in this mode before any network call
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	holdings, err := hodl.LoadHoldings(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()
	portfolio, err := hodl.BuildPortfolio(client, holdings, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	mcap, err := client.MarketCap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching market cap: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := hodl.BuildTable(portfolio, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ReportMarkdown(&renderer.Report{
		Portfolio: portfolio,
		Table:     table,
		MarketCap: mcap,
		Currency:  currency,
		Decimals:  c.decimals,
	}))

	return subcommands.ExitSuccess
}
