package product

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary amount with exactly two decimal places and
// comma thousands separators, e.g. 1234.5 -> "1,234.50".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatMoneyFloat is FormatMoney over a raw float. NaN and infinities
// render as zero instead of failing.
func FormatMoneyFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return FormatMoney(decimal.NewFromFloat(v))
}
