package plstate

import (
	"github.com/plview-dev/plview/internal/model"
	"github.com/plview-dev/plview/internal/tags"
)

// Action is a tagged state transition. The concrete types below are the only
// ways a PLState ever changes.
type Action interface {
	isAction()
}

// SetLoading marks a load in flight.
type SetLoading struct{ Loading bool }

// SetError records a terminal load failure and clears Loading. No partial
// data accompanies it.
type SetError struct{ Err string }

// LoadData replaces all derived state wholesale with the result of one
// pipeline run, tag store included, so a reader never sees fresh rows
// with a stale tag store.
type LoadData struct {
	Transactions []model.Transaction
	Accounts     map[string]model.Account
	Rows         map[string]model.PLRow
	Months       []string
	Summary      model.PLSummary
	Tags         map[string]tags.Tag
	TagConfig    tags.Config
	SkippedRows  int
	Issues       []model.Issue
}

// ToggleAccount flips an account's expand/collapse selection.
type ToggleAccount struct{ Code string }

// ToggleMonth flips a month column's expand/collapse selection.
type ToggleMonth struct{ Month string }

// TagTransaction attaches a tag to a transaction.
type TagTransaction struct {
	ID  string
	Tag tags.Tag
}

// UntagTransaction removes a transaction's tag.
type UntagTransaction struct{ ID string }

// AddSubAccount adds a sub-account label to a tag category.
type AddSubAccount struct {
	Category tags.Category
	Name     string
}

// LoadTags replaces the tag store wholesale.
type LoadTags struct {
	Tags   map[string]tags.Tag
	Config tags.Config
}

func (SetLoading) isAction()       {}
func (SetError) isAction()         {}
func (LoadData) isAction()         {}
func (ToggleAccount) isAction()    {}
func (ToggleMonth) isAction()      {}
func (TagTransaction) isAction()   {}
func (UntagTransaction) isAction() {}
func (AddSubAccount) isAction()    {}
func (LoadTags) isAction()         {}

// Reduce applies an action to a snapshot and returns the next snapshot. It
// never mutates its input; collections that change are copied first.
func Reduce(s PLState, a Action) PLState {
	switch a := a.(type) {
	case SetLoading:
		s.Loading = a.Loading

	case SetError:
		s.Err = a.Err
		s.Loading = false

	case LoadData:
		s.Transactions = a.Transactions
		s.Accounts = a.Accounts
		s.Rows = a.Rows
		s.Months = a.Months
		s.Summary = a.Summary
		s.Tags = a.Tags
		s.TagConfig = a.TagConfig
		s.SkippedRows = a.SkippedRows
		s.Issues = a.Issues
		s.Loading = false
		s.Err = ""

	case ToggleAccount:
		s.ExpandedAccounts = toggled(s.ExpandedAccounts, a.Code)

	case ToggleMonth:
		s.ExpandedMonths = toggled(s.ExpandedMonths, a.Month)

	case TagTransaction:
		next := copyTags(s.Tags)
		next[a.ID] = a.Tag
		s.Tags = next

	case UntagTransaction:
		next := copyTags(s.Tags)
		delete(next, a.ID)
		s.Tags = next

	case AddSubAccount:
		cfg := s.TagConfig
		switch a.Category {
		case tags.CategoryPersonal:
			cfg.Personal = appendUnique(cfg.Personal, a.Name)
		case tags.CategoryNonRecurring:
			cfg.NonRecurring = appendUnique(cfg.NonRecurring, a.Name)
		}
		s.TagConfig = cfg

	case LoadTags:
		s.Tags = a.Tags
		s.TagConfig = a.Config
	}
	return s
}

func toggled(set map[string]bool, key string) map[string]bool {
	next := make(map[string]bool, len(set)+1)
	for k := range set {
		next[k] = true
	}
	if next[key] {
		delete(next, key)
	} else {
		next[key] = true
	}
	return next
}

func copyTags(m map[string]tags.Tag) map[string]tags.Tag {
	next := make(map[string]tags.Tag, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}

func appendUnique(list []string, name string) []string {
	for _, v := range list {
		if v == name {
			return list
		}
	}
	next := make([]string, len(list), len(list)+1)
	copy(next, list)
	return append(next, name)
}
