package model

import "fmt"

// IssueKind classifies a recoverable data-quality problem found during load.
type IssueKind string

const (
	// IssueMalformedRow is a row that is neither a transaction, a section
	// header, nor a recognized structural line.
	IssueMalformedRow IssueKind = "malformed-row"
	// IssueBadAmount is a transaction row whose amount field did not parse;
	// the row is kept with a zero amount.
	IssueBadAmount IssueKind = "bad-amount"
	// IssueExcludedAccount is a row whose account resolves outside the P&L
	// code band; the row is excluded from aggregation.
	IssueExcludedAccount IssueKind = "excluded-account"
	// IssueUnknownAccount is a transaction whose account code has no node in
	// the derived forest; the transaction is dropped from roll-up totals.
	IssueUnknownAccount IssueKind = "unknown-account"
)

// Issue describes one data-quality problem. Issues accumulate alongside the
// load result; a single bad line never aborts reporting.
type Issue struct {
	Kind   IssueKind
	Row    int // 1-based line number in the export, 0 if not row-scoped
	Detail string
}

func (i Issue) String() string {
	if i.Row > 0 {
		return fmt.Sprintf("row %d: %s: %s", i.Row, i.Kind, i.Detail)
	}
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}
