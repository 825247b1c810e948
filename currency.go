package hodl

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// BTC is the base cryptocurrency code. Reports in BTC always use 8 fraction
// digits, mirroring how go-money drives rounding from Currency.Fraction.
const BTC = "BTC"

func init() {
	// go-money only knows fiat currencies out of the box.
	money.AddCurrency(BTC, "₿", "$1", ".", ",", 8)
}

// Currency is a validated reporting currency. The zero value is not valid;
// use ParseCurrency.
type Currency struct {
	code string
}

// ParseCurrency validates a user-supplied currency code against the go-money
// currency table. Matching is case-insensitive.
func ParseCurrency(code string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(c) == nil {
		return Currency{}, fmt.Errorf("unrecognized currency %q", code)
	}
	return Currency{code: c}, nil
}

// Code returns the upper-case currency code, as displayed in column labels
// and totals.
func (c Currency) Code() string { return c.code }

// Query returns the lower-case code the market data API expects.
func (c Currency) Query() string { return strings.ToLower(c.code) }

// IsBTC reports whether this is the base cryptocurrency.
func (c Currency) IsBTC() bool { return c.code == BTC }

// Decimals returns the effective number of fractional digits for price and
// value columns. BTC forces 8 regardless of the requested value; this is a
// hard rule, not a default.
func (c Currency) Decimals(requested int) int {
	if c.IsBTC() {
		return money.GetCurrency(BTC).Fraction
	}
	return requested
}

func (c Currency) String() string { return c.code }
