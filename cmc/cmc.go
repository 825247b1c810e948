// Package cmc implements hodl.MarketDataClient against a CoinMarketCap
// v1-style JSON API: per-asset tickers, global market statistics and a full
// listing used for symbol resolution and search.
//
// Ticker payloads encode numbers as JSON strings and name the price field
// after the requested currency (price_usd, price_eur, ...), so fixed fields
// are read from loosely-typed maps and the currency-dependent field is
// extracted with a jsonpath.
package cmc

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/hodlcore/hodl"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.coinmarketcap.com"

// Client fetches market data over HTTP. The listing and global statistics
// go through a daily-expiring disk cache; per-asset quotes are always live.
type Client struct {
	base  string
	live  *http.Client
	daily *http.Client
}

var _ hodl.MarketDataClient = (*Client)(nil)

// NewClient returns a client for the API at base (DefaultBaseURL for the
// public service; tests inject their own).
func NewClient(base string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		live:  new(http.Client),
		daily: newDailyCachingClient(),
	}
}

// listedToken is one entry of the full listing.
type listedToken struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (c *Client) listing() ([]listedToken, error) {
	addr := c.base + "/v1/ticker/?limit=0"
	tokens := make([]listedToken, 0)
	if err := jwget(c.daily, addr, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// resolve maps a user-supplied symbol (or listing id) to the ticker id the
// API addresses assets by.
func (c *Client) resolve(symbol string) (string, error) {
	tokens, err := c.listing()
	if err != nil {
		return "", err
	}
	s := strings.ToLower(symbol)
	for _, t := range tokens {
		if strings.ToLower(t.Symbol) == s || strings.ToLower(t.ID) == s {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("symbol %q: %w", symbol, hodl.ErrQuoteNotFound)
}

// Quote implements hodl.MarketDataClient.
func (c *Client) Quote(symbol, currency string) (hodl.Quote, error) {
	id, err := c.resolve(symbol)
	if err != nil {
		return hodl.Quote{}, err
	}

	addr := fmt.Sprintf("%s/v1/ticker/%s/?convert=%s", c.base, url.PathEscape(id), url.QueryEscape(currency))
	var jobj any
	if err := jwget(c.live, addr, &jobj); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return hodl.Quote{}, fmt.Errorf("id %q: %w", id, hodl.ErrQuoteNotFound)
		}
		return hodl.Quote{}, err
	}

	// ticker responses are single-element arrays
	first, err := jsonpath.Get("$[0]", jobj)
	if err != nil {
		return hodl.Quote{}, fmt.Errorf("unexpected ticker payload for %q: %w", id, err)
	}
	item, ok := first.(map[string]any)
	if !ok {
		return hodl.Quote{}, fmt.Errorf("unexpected ticker payload for %q", id)
	}

	priceBTC, err := jdecimal(item["price_btc"])
	if err != nil {
		return hodl.Quote{}, fmt.Errorf("ticker %q: price_btc: %w", id, err)
	}
	volume, err := jdecimal(item["24h_volume_usd"])
	if err != nil {
		return hodl.Quote{}, fmt.Errorf("ticker %q: 24h_volume_usd: %w", id, err)
	}

	// the price field name depends on the requested currency
	path := fmt.Sprintf("$[0].price_%s", strings.ToLower(currency))
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return hodl.Quote{}, fmt.Errorf("ticker %q has no price in %q: %w", id, currency, err)
	}
	price, err := jdecimal(jval)
	if err != nil {
		return hodl.Quote{}, fmt.Errorf("ticker %q: %s: %w", id, path, err)
	}

	return hodl.Quote{
		Symbol:           jstring(item["symbol"]),
		Name:             jstring(item["name"]),
		Rank:             jint(item["rank"]),
		Price:            price,
		PriceBTC:         priceBTC,
		PercentChange1h:  jpercent(item["percent_change_1h"]),
		PercentChange24h: jpercent(item["percent_change_24h"]),
		PercentChange7d:  jpercent(item["percent_change_7d"]),
		Volume24h:        volume,
	}, nil
}

// MarketCap implements hodl.MarketDataClient.
func (c *Client) MarketCap() (hodl.MarketCapSummary, error) {
	addr := c.base + "/v1/global/"
	var jobj map[string]any
	if err := jwget(c.daily, addr, &jobj); err != nil {
		return hodl.MarketCapSummary{}, err
	}
	mcap, err := jdecimal(jobj["total_market_cap_usd"])
	if err != nil {
		return hodl.MarketCapSummary{}, fmt.Errorf("global: total_market_cap_usd: %w", err)
	}
	volume, err := jdecimal(jobj["total_24h_volume_usd"])
	if err != nil {
		return hodl.MarketCapSummary{}, fmt.Errorf("global: total_24h_volume_usd: %w", err)
	}
	return hodl.MarketCapSummary{MarketCapUSD: mcap, Volume24hUSD: volume}, nil
}

// Search implements hodl.MarketDataClient by filtering the cached listing:
// a match is an exact symbol or a case-insensitive substring of the name or
// id. Order follows the listing (the service's own rank order).
func (c *Client) Search(query string, limit int) ([]hodl.SearchResult, error) {
	tokens, err := c.listing()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var results []hodl.SearchResult
	for _, t := range tokens {
		if limit > 0 && len(results) == limit {
			break
		}
		if strings.EqualFold(t.Symbol, query) ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.ID), q) {
			results = append(results, hodl.SearchResult{Name: t.Name, ID: t.ID})
		}
	}
	return results, nil
}

// jdecimal reads a v1 numeric value, which may arrive as a JSON string or a
// bare number.
func jdecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case string:
		return decimal.NewFromString(n)
	case float64:
		return decimal.NewFromFloat(n), nil
	case nil:
		return decimal.Decimal{}, errors.New("missing value")
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", v)
	}
}

// jpercent is best effort: a missing or malformed change is 0, never fatal.
func jpercent(v any) hodl.Percent {
	switch n := v.(type) {
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return hodl.Percent(f)
	case float64:
		return hodl.Percent(n)
	default:
		return 0
	}
}

func jstring(v any) string {
	s, _ := v.(string)
	return s
}

func jint(v any) int {
	switch n := v.(type) {
	case string:
		i, _ := strconv.Atoi(n)
		return i
	case float64:
		return int(n)
	default:
		return 0
	}
}
