package model

import "github.com/shopspring/decimal"

// PLRow is the aggregation output for one account: its rolled-up monthly
// amounts (own transactions plus all descendants), the YTD total across the
// reporting window, and the rolled-up transaction count.
type PLRow struct {
	AccountCode      string
	Account          Account
	MonthlyAmounts   map[string]decimal.Decimal // one entry per month in the axis, zero-filled
	YTDTotal         decimal.Decimal
	TransactionCount int
}

// PLSummary holds the top-line metrics derived from the aggregated rows.
// Margins are ratios (0.6842), not percentages; both are zero when net
// revenue is zero.
type PLSummary struct {
	GrossRevenue     decimal.Decimal
	NetRevenue       decimal.Decimal
	TotalCOGS        decimal.Decimal
	TotalCostOfSales decimal.Decimal
	GrossProfit      decimal.Decimal
	GrossMargin      decimal.Decimal
	TotalOpEx        decimal.Decimal
	OtherIncome      decimal.Decimal
	NetIncome        decimal.Decimal
	NetMargin        decimal.Decimal
	TaggedItemsCount int
	TaggedAmount     decimal.Decimal
}
