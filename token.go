package hodl

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Token joins one holding with its quote. It is immutable after
// construction: Value and ValueBTC are derived from price × balance in
// NewToken and never set independently.
type Token struct {
	Symbol  string
	Name    string
	Rank    int
	Balance decimal.Decimal

	Price    decimal.Decimal // unit price in the reporting currency
	PriceBTC decimal.Decimal
	Value    decimal.Decimal // Price × Balance
	ValueBTC decimal.Decimal // PriceBTC × Balance

	PercentChange1h  Percent
	PercentChange24h Percent
	PercentChange7d  Percent
	Volume24h        decimal.Decimal
}

// NewToken builds the Token for a holding from its quote.
func NewToken(balance decimal.Decimal, q Quote) Token {
	return Token{
		Symbol:           q.Symbol,
		Name:             q.Name,
		Rank:             q.Rank,
		Balance:          balance,
		Price:            q.Price,
		PriceBTC:         q.PriceBTC,
		Value:            q.Price.Mul(balance),
		ValueBTC:         q.PriceBTC.Mul(balance),
		PercentChange1h:  q.PercentChange1h,
		PercentChange24h: q.PercentChange24h,
		PercentChange7d:  q.PercentChange7d,
		Volume24h:        q.Volume24h,
	}
}

// DisplayName is the "Name (SYMBOL)" form used in the coin column.
func (t Token) DisplayName() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Symbol)
}
