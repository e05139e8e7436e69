package model

// PLSection classifies accounts into the five P&L report sections.
type PLSection string

const (
	SectionRevenue     PLSection = "revenue"
	SectionCOGS        PLSection = "cogs"
	SectionCostOfSales PLSection = "costOfSales"
	SectionOpEx        PLSection = "operatingExpenses"
	SectionOtherIncome PLSection = "otherIncome"
)

// Sections lists the P&L sections in report order.
var Sections = []PLSection{
	SectionRevenue,
	SectionCOGS,
	SectionCostOfSales,
	SectionOpEx,
	SectionOtherIncome,
}

// Account is one node of the account forest derived from the ledger export.
// Accounts are immutable after construction; a reload rebuilds the whole forest.
type Account struct {
	Code       string // unique key, e.g. "4010"
	Name       string // label without the code prefix, e.g. "Discounts"
	FullName   string // original label as seen in the export
	ParentCode string // "" = root
	Section    PLSection
	Children   []string // child codes, sorted
	Depth      int      // root = 0
}
