// Package hodl values a set of crypto-asset holdings against a remote
// market-data service and produces sorted, currency-aware report tables.
//
// The core functionalities include:
//   - Valuation: joining each (symbol, balance) holding with a market quote
//     into an immutable Token, and folding Tokens into a Portfolio with
//     totals in the reporting currency and in BTC.
//   - Report Building: turning a Portfolio into an ordered, formatted row
//     set with a closed set of column descriptors, a sort-key dispatch, and
//     a percent-of-portfolio display mode.
//   - Currency Policy: reporting currencies are validated against the
//     go-money currency table; BTC is registered there as a currency with
//     eight fraction digits, which drives the fixed 8-decimal rendering.
//   - Search Reporting: a plain-text summary of symbol search results.
//
// This package serves as the foundational logic for the `hodl` command-line
// tool. All entities are request-scoped: they are built from a single
// invocation's fetch results and discarded after the report is printed.
package hodl
