package hodl

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLargeNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"zero", 0, "0"},
		{"below thousand", 999, "999"},
		{"exact thousand", 1000, "1k"},
		{"half step rounds to even", 1500000, "2m"},
		{"billion", 3e9, "3bn"},
		{"trillion", 5e12, "5tn"},
		{"ladder clamps at trillions", 7e15, "7000tn"},
		{"negative", -2000.0, "-2k"},
		{"numeric string", "1234567", "1m"},
		{"decimal value", decimal.NewFromInt(45000), "45k"},
		{"non numeric string", "abc", "?"},
		{"unsupported type", struct{}{}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LargeNumber(tt.in); got != tt.want {
				t.Errorf("LargeNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
