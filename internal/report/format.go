package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount for display: dollar sign, thousands
// separators, negatives in parentheses. "(1,234.50)" style follows the
// source ledger's convention.
func FormatCurrency(d decimal.Decimal) string {
	s := "$" + groupThousands(d.Abs().StringFixed(2))
	if d.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// FormatMonth renders a month key for a column header: "2025-01" -> "Jan 25".
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 06")
}

func groupThousands(fixed string) string {
	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
