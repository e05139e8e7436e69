package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/model"
)

// Result holds one aggregation pass: a PLRow per account in the forest, the
// contiguous month axis, and any transactions dropped along the way.
type Result struct {
	Rows   map[string]model.PLRow
	Months []string // contiguous, sorted month keys
	Issues []model.Issue
}

// Aggregate buckets transactions by account and month, then rolls child
// totals up through the forest. Every account in the forest gets a row even
// with no postings; a transaction whose code has no forest node is dropped
// and reported, never silently included.
func Aggregate(txns []model.Transaction, accts *accounts.Service) *Result {
	res := &Result{Rows: make(map[string]model.PLRow, accts.Len())}
	res.Months = monthAxis(txns)

	// Own amounts per account per month, before roll-up.
	own := make(map[string]map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, t := range txns {
		if !accts.Exists(t.AccountCode) {
			res.Issues = append(res.Issues, model.Issue{
				Kind:   model.IssueUnknownAccount,
				Detail: fmt.Sprintf("transaction %s references unknown account %s", t.ID, t.AccountCode),
			})
			continue
		}
		if own[t.AccountCode] == nil {
			own[t.AccountCode] = make(map[string]decimal.Decimal)
		}
		own[t.AccountCode][t.Month] = own[t.AccountCode][t.Month].Add(t.Amount)
		counts[t.AccountCode]++
	}

	// Bottom-up roll-up: leaves first, so every child total already exists
	// when its parent is visited.
	rolled := make(map[string]map[string]decimal.Decimal, accts.Len())
	rolledCounts := make(map[string]int, accts.Len())
	for _, code := range accts.LeavesFirst() {
		acct, _ := accts.Get(code)
		totals := make(map[string]decimal.Decimal, len(res.Months))
		count := counts[code]
		for _, m := range res.Months {
			sum := decimal.Zero.Add(own[code][m])
			for _, child := range acct.Children {
				sum = sum.Add(rolled[child][m])
			}
			totals[m] = sum
		}
		for _, child := range acct.Children {
			count += rolledCounts[child]
		}
		rolled[code] = totals
		rolledCounts[code] = count
	}

	for _, acct := range accts.All() {
		monthly := make(map[string]decimal.Decimal, len(res.Months))
		ytd := decimal.Zero
		for _, m := range res.Months {
			amount := rolled[acct.Code][m]
			monthly[m] = amount
			ytd = ytd.Add(amount)
		}
		res.Rows[acct.Code] = model.PLRow{
			AccountCode:      acct.Code,
			Account:          acct,
			MonthlyAmounts:   monthly,
			YTDTotal:         ytd,
			TransactionCount: rolledCounts[acct.Code],
		}
	}
	return res
}

// FilterMonths returns the transactions whose month key falls in [from, to].
// Empty bounds are open ends. Month keys compare lexically ("2006-01").
func FilterMonths(txns []model.Transaction, from, to string) []model.Transaction {
	if from == "" && to == "" {
		return txns
	}
	var result []model.Transaction
	for _, t := range txns {
		if from != "" && t.Month < from {
			continue
		}
		if to != "" && t.Month > to {
			continue
		}
		result = append(result, t)
	}
	return result
}

// monthAxis returns every month key from the earliest to the latest month
// seen, inclusive. Months with no activity are present so sparse data never
// shifts column alignment.
func monthAxis(txns []model.Transaction) []string {
	min, max := "", ""
	for _, t := range txns {
		if min == "" || t.Month < min {
			min = t.Month
		}
		if max == "" || t.Month > max {
			max = t.Month
		}
	}
	if min == "" {
		return nil
	}

	start, err := time.Parse("2006-01", min)
	if err != nil {
		return []string{min}
	}
	var months []string
	for m := start; ; m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		months = append(months, key)
		if key >= max {
			break
		}
	}
	return months
}
