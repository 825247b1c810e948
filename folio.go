package hodl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Holding is one (symbol, balance) pair from the holdings file.
type Holding struct {
	Symbol  string
	Balance decimal.Decimal
}

// UnmarshalJSON decodes the holdings file entry form: a 2-element array
// ["symbol", balance]. The balance must be a non-negative number; zero is
// allowed and simply contributes zero value.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("holding must be a [symbol, balance] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &h.Symbol); err != nil {
		return fmt.Errorf("holding symbol: %w", err)
	}
	if err := json.Unmarshal(pair[1], &h.Balance); err != nil {
		return fmt.Errorf("invalid balance for %q: %w", h.Symbol, err)
	}
	if h.Balance.IsNegative() {
		return fmt.Errorf("invalid balance for %q: %s is negative", h.Symbol, h.Balance)
	}
	return nil
}

// DecodeHoldings parses a holdings document: a JSON array of [symbol,
// balance] pairs, order preserving.
func DecodeHoldings(data []byte) ([]Holding, error) {
	var holdings []Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return nil, fmt.Errorf("cannot decode holdings: %w", err)
	}
	return holdings, nil
}

// LoadHoldings reads and parses the holdings file at path.
func LoadHoldings(path string) ([]Holding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeHoldings(content)
}

// Portfolio aggregates the Tokens of one report run. Totals are a pure fold
// over Token values in holdings input order; a Portfolio is rebuilt, never
// incrementally mutated.
type Portfolio struct {
	Tokens   []Token
	Value    decimal.Decimal // sum of Token.Value, in the reporting currency
	ValueBTC decimal.Decimal // sum of Token.ValueBTC
}

// BuildPortfolio fetches one quote per holding, strictly sequentially and in
// input order, and folds the resulting Tokens into a Portfolio. The first
// failing holding aborts the build: totals require every holding, so there
// is no partial report.
func BuildPortfolio(client MarketDataClient, holdings []Holding, currency Currency) (*Portfolio, error) {
	p := &Portfolio{Tokens: make([]Token, 0, len(holdings))}
	for _, h := range holdings {
		if h.Balance.IsNegative() {
			return nil, fmt.Errorf("invalid balance for %q: %s is negative", h.Symbol, h.Balance)
		}
		q, err := client.Quote(h.Symbol, currency.Query())
		if err != nil {
			return nil, fmt.Errorf("quote %q: %w", h.Symbol, err)
		}
		t := NewToken(h.Balance, q)
		p.Tokens = append(p.Tokens, t)
		p.Value = p.Value.Add(t.Value)
		p.ValueBTC = p.ValueBTC.Add(t.ValueBTC)
	}
	return p, nil
}
