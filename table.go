package hodl

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey selects the column a report table is ordered by.
type SortKey string

const (
	SortRank     SortKey = "rank"
	SortCoin     SortKey = "coin"
	SortAmount   SortKey = "amount"
	SortPrice    SortKey = "price"
	SortValue    SortKey = "value"
	SortPercents SortKey = "percents"
	SortVolume   SortKey = "volume"
	SortPct1h    SortKey = "pct"
	SortPctDay   SortKey = "pct_day"
	SortPctWeek  SortKey = "pct_week"
)

var sortKeys = []SortKey{
	SortRank, SortCoin, SortAmount, SortPrice, SortValue,
	SortPercents, SortVolume, SortPct1h, SortPctDay, SortPctWeek,
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(sortKeys, k) {
		names := make([]string, len(sortKeys))
		for i, sk := range sortKeys {
			names[i] = string(sk)
		}
		slices.Sort(names)
		return "", fmt.Errorf("unknown sort key %q (one of: %s)", s, strings.Join(names, ", "))
	}
	return k, nil
}

// Alignment of a rendered column.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
)

// TableOptions configure a table build.
type TableOptions struct {
	Currency Currency
	SortBy   SortKey // empty selects the default for the mode
	Reverse  bool    // ascending instead of descending
	Percents bool    // replace amount and value with share-of-portfolio
	Decimals int     // fractional digits for amount, price and value
}

// sortKey resolves the effective sort key: the caller's choice, or the mode
// default (value, or percents when in percents mode).
func (o TableOptions) sortKey() SortKey {
	if o.SortBy != "" {
		return o.SortBy
	}
	if o.Percents {
		return SortPercents
	}
	return SortValue
}

// Validate reports sort keys that have no column in the current mode. It is
// cheap and network-free, so callers can reject bad flags before fetching.
func (o TableOptions) Validate() error {
	switch key := o.sortKey(); {
	case o.Percents && (key == SortAmount || key == SortValue):
		return fmt.Errorf("cannot sort by %q in percents mode: the column is not displayed", key)
	case !o.Percents && key == SortPercents:
		return fmt.Errorf("sorting by %q requires percents mode (-p)", key)
	}
	return nil
}

// Table is an ordered, formatted row set ready for rendering. Building it
// has no side effects; printing is the renderer's job.
type Table struct {
	Headers []string
	Aligns  []Alignment
	Rows    [][]string
}

// column describes one table column: sort tag, display label, alignment and
// cell formatter. The column sets below are closed; percents mode selects a
// different shape instead of editing this one in place.
type column struct {
	key    SortKey
	label  string
	align  Alignment
	format func(b *tableBuilder, t Token) string
}

// tableBuilder carries the per-build state shared by formatters and
// comparators.
type tableBuilder struct {
	opts     TableOptions
	decimals int32
	total    decimal.Decimal // portfolio total in the displayed value family
}

// price and value return the displayed price family: the BTC fields when the
// reporting currency is BTC, the fiat fields otherwise.
func (b *tableBuilder) price(t Token) decimal.Decimal {
	if b.opts.Currency.IsBTC() {
		return t.PriceBTC
	}
	return t.Price
}

func (b *tableBuilder) value(t Token) decimal.Decimal {
	if b.opts.Currency.IsBTC() {
		return t.ValueBTC
	}
	return t.Value
}

// share is the token's percentage of the portfolio total. A zero total is
// defined as 0% so an all-zero portfolio still renders.
func (b *tableBuilder) share(t Token) decimal.Decimal {
	if b.total.IsZero() {
		return decimal.Zero
	}
	return b.value(t).Mul(decimal.NewFromInt(100)).Div(b.total)
}

func (b *tableBuilder) columns() []column {
	rank := column{SortRank, "Rank #", AlignRight,
		func(b *tableBuilder, t Token) string { return fmt.Sprintf("%d", t.Rank) }}
	coin := column{SortCoin, "Coin/token", AlignLeft,
		func(b *tableBuilder, t Token) string { return t.DisplayName() }}
	amount := column{SortAmount, "Amount", AlignRight,
		func(b *tableBuilder, t Token) string { return t.Balance.StringFixed(b.decimals) }}
	price := column{SortPrice, fmt.Sprintf("Price (%s)", b.opts.Currency.Code()), AlignRight,
		func(b *tableBuilder, t Token) string { return b.price(t).StringFixed(b.decimals) }}
	value := column{SortValue, fmt.Sprintf("Value (%s)", b.opts.Currency.Code()), AlignRight,
		func(b *tableBuilder, t Token) string { return b.value(t).StringFixed(b.decimals) }}
	percents := column{SortPercents, "Portfolio %", AlignRight,
		func(b *tableBuilder, t Token) string { return b.share(t).StringFixed(2) + "%" }}
	volume := column{SortVolume, "24h vol", AlignRight,
		func(b *tableBuilder, t Token) string { return LargeNumber(t.Volume24h) }}
	pct1h := column{SortPct1h, "% 1h", AlignRight,
		func(b *tableBuilder, t Token) string { return t.PercentChange1h.SignedString() }}
	pctDay := column{SortPctDay, "% day", AlignRight,
		func(b *tableBuilder, t Token) string { return t.PercentChange24h.SignedString() }}
	pctWeek := column{SortPctWeek, "% week", AlignRight,
		func(b *tableBuilder, t Token) string { return t.PercentChange7d.SignedString() }}

	if b.opts.Percents {
		return []column{rank, coin, percents, price, volume, pct1h, pctDay, pctWeek}
	}
	return []column{rank, coin, amount, price, value, volume, pct1h, pctDay, pctWeek}
}

// compare orders two tokens by key, ascending. Callers flip the result for
// the default descending order.
func (b *tableBuilder) compare(key SortKey, x, y Token) int {
	switch key {
	case SortRank:
		return cmp.Compare(x.Rank, y.Rank)
	case SortCoin:
		return strings.Compare(x.DisplayName(), y.DisplayName())
	case SortAmount:
		return x.Balance.Cmp(y.Balance)
	case SortPrice:
		return b.price(x).Cmp(b.price(y))
	case SortValue, SortPercents:
		// share is value scaled by a positive constant, same order
		return b.value(x).Cmp(b.value(y))
	case SortVolume:
		return x.Volume24h.Cmp(y.Volume24h)
	case SortPct1h:
		return cmp.Compare(x.PercentChange1h, y.PercentChange1h)
	case SortPctDay:
		return cmp.Compare(x.PercentChange24h, y.PercentChange24h)
	case SortPctWeek:
		return cmp.Compare(x.PercentChange7d, y.PercentChange7d)
	}
	return 0
}

// BuildTable produces the ordered, formatted row set for a portfolio.
// Ordering is descending by the chosen key unless opts.Reverse; the sort is
// stable, so equal keys preserve holdings input order.
func BuildTable(p *Portfolio, opts TableOptions) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := &tableBuilder{
		opts:     opts,
		decimals: int32(opts.Currency.Decimals(opts.Decimals)),
	}
	b.total = p.Value
	if opts.Currency.IsBTC() {
		b.total = p.ValueBTC
	}

	key := opts.sortKey()
	tokens := slices.Clone(p.Tokens)
	slices.SortStableFunc(tokens, func(x, y Token) int {
		if opts.Reverse {
			return b.compare(key, x, y)
		}
		return b.compare(key, y, x)
	})

	cols := b.columns()
	table := &Table{
		Headers: make([]string, len(cols)),
		Aligns:  make([]Alignment, len(cols)),
		Rows:    make([][]string, 0, len(tokens)),
	}
	for i, col := range cols {
		table.Headers[i] = col.label
		table.Aligns[i] = col.align
	}
	for _, t := range tokens {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = col.format(b, t)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
