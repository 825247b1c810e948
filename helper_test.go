package hodl

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// d is a helper for tests to create decimals from float constants.
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// fakeMarket is a MarketDataClient test double keyed by lower-case symbol.
type fakeMarket struct {
	quotes  map[string]Quote
	mcap    MarketCapSummary
	results []SearchResult
}

func (f *fakeMarket) Quote(symbol, currency string) (Quote, error) {
	q, ok := f.quotes[strings.ToLower(symbol)]
	if !ok {
		return Quote{}, fmt.Errorf("symbol %q: %w", symbol, ErrQuoteNotFound)
	}
	return q, nil
}

func (f *fakeMarket) MarketCap() (MarketCapSummary, error) {
	return f.mcap, nil
}

func (f *fakeMarket) Search(query string, limit int) ([]SearchResult, error) {
	return f.results, nil
}

// testMarket returns the quotes used across the valuation tests: 1 BTC at
// 20000 USD and 1 ETH at 1500 USD / 0.075 BTC.
func testMarket() *fakeMarket {
	return &fakeMarket{
		quotes: map[string]Quote{
			"btc": {
				Symbol: "BTC", Name: "Bitcoin", Rank: 1,
				Price: d(20000), PriceBTC: d(1),
				PercentChange1h: 0.5, PercentChange24h: -1.2, PercentChange7d: 3.4,
				Volume24h: d(35e9),
			},
			"eth": {
				Symbol: "ETH", Name: "Ethereum", Rank: 2,
				Price: d(1500), PriceBTC: d(0.075),
				PercentChange1h: -0.1, PercentChange24h: 2.0, PercentChange7d: -5.0,
				Volume24h: d(12e9),
			},
			"ltc": {
				Symbol: "LTC", Name: "Litecoin", Rank: 5,
				Price: d(60), PriceBTC: d(0.003),
				PercentChange1h: 0, PercentChange24h: 0.8, PercentChange7d: 1.1,
				Volume24h: d(4e8),
			},
		},
	}
}

func mustCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}
