package id

import (
	"fmt"
	"strings"
	"time"
)

// Transaction returns a deterministic transaction ID like
// "txn-12-15-2025-4000Sales-42". IDs are pure functions of the row so that
// re-parsing the same export yields identical state.
func Transaction(date time.Time, accountFullName string, index int) string {
	account := accountFullName
	if len(account) > 20 {
		account = account[:20]
	}
	account = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, account)
	return fmt.Sprintf("txn-%s-%s-%d", date.Format("01-02-2006"), account, index)
}
