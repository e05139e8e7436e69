// Package plstate holds the presentation-facing view of a load as immutable
// snapshots. A pure reducer applies tagged actions; consumers only ever see
// whole snapshots, never a half-updated one.
package plstate

import (
	"github.com/plview-dev/plview/internal/model"
	"github.com/plview-dev/plview/internal/tags"
)

// PLState is one snapshot of everything the presentation layer reads:
// transactions, the account forest, aggregated rows, the month axis, the
// summary, tags, and UI expand/collapse selections. Loading and Err let a
// consumer distinguish "still loading", "loaded with N rows skipped", and
// "failed to load" without re-parsing.
type PLState struct {
	Transactions []model.Transaction
	Accounts     map[string]model.Account
	Rows         map[string]model.PLRow
	Months       []string
	Summary      model.PLSummary

	Tags      map[string]tags.Tag
	TagConfig tags.Config

	ExpandedAccounts map[string]bool
	ExpandedMonths   map[string]bool

	SkippedRows int
	Issues      []model.Issue
	Loading     bool
	Err         string
}

// Empty returns the initial state before any load.
func Empty() PLState {
	return PLState{
		Accounts:         map[string]model.Account{},
		Rows:             map[string]model.PLRow{},
		Tags:             map[string]tags.Tag{},
		ExpandedAccounts: map[string]bool{},
		ExpandedMonths:   map[string]bool{},
	}
}
