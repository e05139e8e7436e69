package report

import (
	"github.com/shopspring/decimal"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/model"
)

// SummaryOptions tune the summary calculation.
type SummaryOptions struct {
	// ContraRevenueCodes lists revenue accounts (discounts, refunds,
	// chargebacks) whose amounts are backed out of gross revenue. Net
	// revenue always includes them; with no codes configured the two are
	// equal.
	ContraRevenueCodes []string
	// TaggedTransactions holds the IDs of tagged transactions for the tag
	// metrics.
	TaggedTransactions map[string]bool
}

// Summarize derives the top-line P&L metrics from an aggregation result. It
// is a pure function of its inputs: section totals come from the YTD totals
// of each section's root accounts, and margin ratios resolve to zero, never
// an error, when net revenue is zero.
func Summarize(res *Result, accts *accounts.Service, txns []model.Transaction, opts SummaryOptions) model.PLSummary {
	sectionTotal := func(section model.PLSection) decimal.Decimal {
		total := decimal.Zero
		for _, acct := range accts.BySection(section) {
			total = total.Add(res.Rows[acct.Code].YTDTotal)
		}
		return total
	}

	netRevenue := sectionTotal(model.SectionRevenue)

	contra := decimal.Zero
	for _, code := range opts.ContraRevenueCodes {
		if row, ok := res.Rows[code]; ok {
			contra = contra.Add(row.YTDTotal)
		}
	}
	grossRevenue := netRevenue.Sub(contra)

	totalCOGS := sectionTotal(model.SectionCOGS)
	totalCostOfSales := sectionTotal(model.SectionCostOfSales)
	totalOpEx := sectionTotal(model.SectionOpEx)
	otherIncome := sectionTotal(model.SectionOtherIncome)

	grossProfit := netRevenue.Sub(totalCOGS).Sub(totalCostOfSales)
	netIncome := grossProfit.Sub(totalOpEx).Add(otherIncome)

	taggedCount := 0
	taggedAmount := decimal.Zero
	for _, t := range txns {
		if opts.TaggedTransactions[t.ID] {
			taggedCount++
			taggedAmount = taggedAmount.Add(t.Amount)
		}
	}

	return model.PLSummary{
		GrossRevenue:     grossRevenue,
		NetRevenue:       netRevenue,
		TotalCOGS:        totalCOGS,
		TotalCostOfSales: totalCostOfSales,
		GrossProfit:      grossProfit,
		GrossMargin:      safeRatio(grossProfit, netRevenue),
		TotalOpEx:        totalOpEx,
		OtherIncome:      otherIncome,
		NetIncome:        netIncome,
		NetMargin:        safeRatio(netIncome, netRevenue),
		TaggedItemsCount: taggedCount,
		TaggedAmount:     taggedAmount,
	}
}

// safeRatio divides n by d, returning zero when d is zero.
func safeRatio(n, d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return n.Div(d).Round(4)
}
