package hodl

import "fmt"

// Percent is a percentage value, e.g. 2.5 means 2.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders the percent with an explicit sign, the way change
// columns are displayed. Exact zero is rendered as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
