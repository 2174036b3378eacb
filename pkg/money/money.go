package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a decimal amount as USD with thousands separators and two
// decimal places, e.g. 1234567.8 -> "$1,234,567.80". Negative amounts are
// rendered as "-$1,234.56".
func Format(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	grouped := groupThousands(whole)
	if amount.IsNegative() {
		return "-$" + grouped + "." + frac
	}
	return "$" + grouped + "." + frac
}

// FormatPercent renders a decimal as a percentage with two decimal places.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
