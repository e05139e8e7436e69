package accounts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/plview-dev/plview/internal/model"
)

// Account labels begin with a four-digit code, e.g. "4010 Discounts".
var codeRe = regexp.MustCompile(`^(\d{4})`)

// Classify maps an account code to its P&L section by code range. Codes that
// fall inside the P&L band but outside every known range default to operating
// expenses, matching the source ledger's chart layout.
func Classify(code string) model.PLSection {
	n, err := strconv.Atoi(code)
	if err != nil {
		return model.SectionOpEx
	}

	switch {
	case n >= 4000 && n < 4100:
		return model.SectionRevenue
	case n >= 5000 && n < 6000:
		return model.SectionCOGS
	case n >= 6000 && n < 6100:
		return model.SectionCostOfSales
	case n >= 6100 && n < 7000:
		return model.SectionOpEx
	case n >= 7000 && n < 8000:
		return model.SectionOtherIncome
	}
	return model.SectionOpEx
}

// IsPLCode reports whether code falls in the P&L band (4000-7999). Codes
// outside the band belong to balance-sheet accounts and are excluded from
// the report.
func IsPLCode(code string) bool {
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= 4000 && n < 8000
}

// ExtractCode returns the leading numeric code of a single path segment,
// or "" if the segment has none.
func ExtractCode(segment string) string {
	return codeRe.FindString(strings.TrimSpace(segment))
}

// SplitPath extracts the account code and immediate parent code from a
// colon-delimited full name. The last segment is the account itself; the
// segment before it is its parent. Linkage is by code, not by path string,
// so the same account under inconsistent path labels resolves to one node.
func SplitPath(fullName string) (code, parentCode string) {
	parts := strings.Split(fullName, ":")
	code = ExtractCode(parts[len(parts)-1])
	if len(parts) > 1 {
		parentCode = ExtractCode(parts[len(parts)-2])
	}
	return code, parentCode
}

// LeafName returns the last path segment with its code prefix removed.
// "4000 Sales:4010 Discounts" -> "Discounts"
func LeafName(fullName string) string {
	parts := strings.Split(fullName, ":")
	leaf := strings.TrimSpace(parts[len(parts)-1])
	if code := codeRe.FindString(leaf); code != "" {
		leaf = strings.TrimSpace(leaf[len(code):])
	}
	return leaf
}
