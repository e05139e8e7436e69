package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a ledger-export amount string to a signed decimal.
// It accepts currency symbols, thousands separators, stray quotes, and
// parentheses-for-negative alongside a leading minus.
//
//	"$1,234.56" -> 1234.56
//	"(50.00)"   -> -50.00
//	"-50"       -> -50.00
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.NewReplacer("$", "", ",", "", "\"", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount %q", s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d.Round(2), nil
}
