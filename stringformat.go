package hodl

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// suffix ladder indexed by floor(log10(|n|)/3), clamped to [0, 4]
var millnames = [...]string{"", "k", "m", "bn", "tn"}

// LargeNumber returns a compact human readable form of a magnitude:
// 1000 -> "1k", 1500000 -> "2m", 3e12 -> "3tn". The scaled value is printed
// with zero fractional digits using fmt's round-half-to-even, so 1500000
// rounds up to the even digit ("2m"). Values that cannot be read as a number
// come back as "?": for display code a bad magnitude is not worth failing
// the whole report.
func LargeNumber(n any) string {
	f, ok := toFloat(n)
	if !ok {
		return "?"
	}
	idx := 0
	if f != 0 {
		idx = int(math.Floor(math.Log10(math.Abs(f)) / 3))
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(millnames)-1 {
		idx = len(millnames) - 1
	}
	return fmt.Sprintf("%.0f%s", f/math.Pow(1000, float64(idx)), millnames[idx])
}

func toFloat(n any) (float64, bool) {
	switch v := n.(type) {
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
