package hodl

import (
	"errors"
	"testing"
)

func TestDecodeHoldings(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Holding
		wantErr bool
	}{
		{
			name: "order preserving",
			in:   `[["btc", 0.5], ["eth", 10], ["ltc", 0]]`,
			want: []Holding{
				{Symbol: "btc", Balance: d(0.5)},
				{Symbol: "eth", Balance: d(10)},
				{Symbol: "ltc", Balance: d(0)},
			},
		},
		{name: "empty", in: `[]`, want: nil},
		{name: "negative balance", in: `[["btc", -1]]`, wantErr: true},
		{name: "non numeric balance", in: `[["btc", "lots"]]`, wantErr: true},
		{name: "missing balance", in: `[["btc"]]`, wantErr: true},
		{name: "extra element", in: `[["btc", 1, 2]]`, wantErr: true},
		{name: "not an array", in: `{"btc": 1}`, wantErr: true},
		{name: "malformed", in: `[["btc", 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHoldings([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeHoldings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeHoldings() = %d holdings, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Symbol != tt.want[i].Symbol || !got[i].Balance.Equal(tt.want[i].Balance) {
					t.Errorf("holding[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildPortfolio(t *testing.T) {
	holdings := []Holding{
		{Symbol: "btc", Balance: d(0.5)},
		{Symbol: "eth", Balance: d(10)},
	}

	p, err := BuildPortfolio(testMarket(), holdings, mustCurrency("USD"))
	if err != nil {
		t.Fatalf("BuildPortfolio() error = %v", err)
	}

	// 0.5 × 20000 + 10 × 1500
	if !p.Value.Equal(d(25000)) {
		t.Errorf("portfolio value = %s, want 25000", p.Value)
	}
	// 0.5 × 1 + 10 × 0.075
	if !p.ValueBTC.Equal(d(1.25)) {
		t.Errorf("portfolio BTC value = %s, want 1.25", p.ValueBTC)
	}

	// totals are a pure fold over token values
	var sum, sumBTC = d(0), d(0)
	for _, tok := range p.Tokens {
		sum = sum.Add(tok.Value)
		sumBTC = sumBTC.Add(tok.ValueBTC)
	}
	if !p.Value.Equal(sum) || !p.ValueBTC.Equal(sumBTC) {
		t.Errorf("totals (%s, %s) do not match token sums (%s, %s)", p.Value, p.ValueBTC, sum, sumBTC)
	}

	// input order is preserved, sorting is the table's job
	if p.Tokens[0].Symbol != "BTC" || p.Tokens[1].Symbol != "ETH" {
		t.Errorf("tokens out of holdings order: %s, %s", p.Tokens[0].Symbol, p.Tokens[1].Symbol)
	}
}

func TestBuildPortfolioUnknownSymbol(t *testing.T) {
	holdings := []Holding{
		{Symbol: "btc", Balance: d(0.5)},
		{Symbol: "wat", Balance: d(1)},
	}

	p, err := BuildPortfolio(testMarket(), holdings, mustCurrency("USD"))
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("BuildPortfolio() error = %v, want ErrQuoteNotFound", err)
	}
	if p != nil {
		t.Error("BuildPortfolio() returned a partial portfolio on failure")
	}
}

func TestBuildPortfolioNegativeBalance(t *testing.T) {
	holdings := []Holding{{Symbol: "btc", Balance: d(-1)}}
	if _, err := BuildPortfolio(testMarket(), holdings, mustCurrency("USD")); err == nil {
		t.Error("BuildPortfolio() accepted a negative balance")
	}
}

func TestBuildPortfolioZeroBalance(t *testing.T) {
	holdings := []Holding{{Symbol: "ltc", Balance: d(0)}}

	p, err := BuildPortfolio(testMarket(), holdings, mustCurrency("USD"))
	if err != nil {
		t.Fatalf("BuildPortfolio() error = %v", err)
	}
	if !p.Value.IsZero() || !p.ValueBTC.IsZero() {
		t.Errorf("zero balance contributed value (%s, %s)", p.Value, p.ValueBTC)
	}
}

func TestNewTokenDisplayName(t *testing.T) {
	q, _ := testMarket().Quote("btc", "usd")
	tok := NewToken(d(2), q)
	if got := tok.DisplayName(); got != "Bitcoin (BTC)" {
		t.Errorf("DisplayName() = %q, want %q", got, "Bitcoin (BTC)")
	}
	if !tok.Value.Equal(d(40000)) {
		t.Errorf("Value = %s, want 40000", tok.Value)
	}
}
