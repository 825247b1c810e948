// Package renderer turns report data into markdown. It only formats;
// fetching and valuation happen upstream, printing happens downstream.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/hodlcore/hodl"
)

// Report carries everything needed to render one portfolio report.
type Report struct {
	Portfolio *hodl.Portfolio
	Table     *hodl.Table
	MarketCap hodl.MarketCapSummary
	Currency  hodl.Currency
	Decimals  int // fractional digits for the fiat total
}

// ReportMarkdown renders the full report: global market header, the token
// table, then portfolio totals. The fiat total uses the requested decimals
// and is omitted when the reporting currency is BTC; the BTC total is always
// printed to 8 decimals.
func ReportMarkdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	doc.PlainText(fmt.Sprintf("Total mcap: $%s, 24h volume: %s",
		hodl.LargeNumber(r.MarketCap.MarketCapUSD),
		hodl.LargeNumber(r.MarketCap.Volume24hUSD)))

	doc.PlainText(tableMarkdown(r.Table))

	if !r.Currency.IsBTC() {
		decimals := int32(r.Currency.Decimals(r.Decimals))
		doc.PlainText(fmt.Sprintf("Total %s: %s", r.Currency.Code(), r.Portfolio.Value.StringFixed(decimals)))
	}
	doc.PlainText(fmt.Sprintf("Total BTC: %s", r.Portfolio.ValueBTC.StringFixed(8)))

	return doc.String()
}

// tableMarkdown writes the row set as a markdown pipe table, deriving the
// separator row from the column alignments.
func tableMarkdown(t *hodl.Table) string {
	var b strings.Builder

	fmt.Fprint(&b, "|")
	for _, h := range t.Headers {
		fmt.Fprintf(&b, " %s |", h)
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "|")
	for _, a := range t.Aligns {
		if a == hodl.AlignLeft {
			fmt.Fprint(&b, ":---|")
		} else {
			fmt.Fprint(&b, "---:|")
		}
	}
	fmt.Fprintln(&b)

	for _, row := range t.Rows {
		fmt.Fprint(&b, "|")
		for _, cell := range row {
			fmt.Fprintf(&b, " %s |", cell)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
