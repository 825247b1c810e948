package hodl

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrQuoteNotFound is returned by a MarketDataClient when the requested
// symbol is unknown to the remote service.
var ErrQuoteNotFound = errors.New("quote not found")

// Quote is a point-in-time price snapshot for one asset in one currency.
// Both price families are always populated: Price in the requested currency,
// and PriceBTC in bitcoin. Selecting between them is display policy.
type Quote struct {
	Symbol           string
	Name             string
	Rank             int
	Price            decimal.Decimal // in the requested currency
	PriceBTC         decimal.Decimal
	PercentChange1h  Percent
	PercentChange24h Percent
	PercentChange7d  Percent
	Volume24h        decimal.Decimal // in USD, regardless of the requested currency
}

// MarketCapSummary holds the global market statistics printed in the report
// header. Both figures are in USD.
type MarketCapSummary struct {
	MarketCapUSD decimal.Decimal
	Volume24hUSD decimal.Decimal
}

// SearchResult is a single (name, id) match for a free-text symbol search.
type SearchResult struct {
	Name string
	ID   string
}

// MarketDataClient supplies quotes, global market statistics and symbol
// search results. It is constructed once per process and passed explicitly,
// so reports can be built against test doubles.
type MarketDataClient interface {
	// Quote returns the quote for symbol priced in currency (lower-case ISO
	// code or "btc"). Returns an error wrapping ErrQuoteNotFound when the
	// symbol is unknown.
	Quote(symbol, currency string) (Quote, error)

	// MarketCap returns the global market statistics.
	MarketCap() (MarketCapSummary, error)

	// Search returns up to limit matches for a free-text query, in the
	// service's own relevance order.
	Search(query string, limit int) ([]SearchResult, error)
}
