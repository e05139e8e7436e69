package plstate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plview-dev/plview/internal/model"
	"github.com/plview-dev/plview/internal/tags"
)

func TestReduce_SetLoading(t *testing.T) {
	s := Reduce(Empty(), SetLoading{Loading: true})
	assert.True(t, s.Loading)
}

func TestReduce_SetErrorClearsLoading(t *testing.T) {
	s := Reduce(Empty(), SetLoading{Loading: true})
	s = Reduce(s, SetError{Err: "failed to load export"})
	assert.Equal(t, "failed to load export", s.Err)
	assert.False(t, s.Loading)
}

func TestReduce_LoadDataReplacesWholesale(t *testing.T) {
	s := Reduce(Empty(), SetLoading{Loading: true})
	s = Reduce(s, SetError{Err: "boom"})

	s = Reduce(s, LoadData{
		Transactions: []model.Transaction{{ID: "txn-1"}},
		Accounts:     map[string]model.Account{"4000": {Code: "4000"}},
		Rows:         map[string]model.PLRow{"4000": {AccountCode: "4000"}},
		Months:       []string{"2025-01"},
		Summary:      model.PLSummary{NetRevenue: decimal.NewFromInt(100)},
		Tags:         map[string]tags.Tag{"txn-1": {Category: tags.CategoryPersonal}},
		SkippedRows:  2,
	})

	assert.False(t, s.Loading)
	assert.Empty(t, s.Err)
	assert.Len(t, s.Transactions, 1)
	assert.Equal(t, []string{"2025-01"}, s.Months)
	assert.Equal(t, 2, s.SkippedRows)
	// Tags land in the same snapshot as the rows they annotate.
	assert.Contains(t, s.Tags, "txn-1")

	// A second load replaces everything, never patches.
	s = Reduce(s, LoadData{Months: []string{"2025-02"}})
	assert.Empty(t, s.Transactions)
	assert.Empty(t, s.Tags)
	assert.Equal(t, []string{"2025-02"}, s.Months)
}

func TestReduce_ToggleAccount(t *testing.T) {
	s0 := Empty()
	s1 := Reduce(s0, ToggleAccount{Code: "4000"})
	s2 := Reduce(s1, ToggleAccount{Code: "4000"})

	assert.True(t, s1.ExpandedAccounts["4000"])
	assert.False(t, s2.ExpandedAccounts["4000"])
	// Earlier snapshots are untouched.
	assert.Empty(t, s0.ExpandedAccounts)
	assert.True(t, s1.ExpandedAccounts["4000"])
}

func TestReduce_ToggleMonth(t *testing.T) {
	s := Reduce(Empty(), ToggleMonth{Month: "2025-01"})
	assert.True(t, s.ExpandedMonths["2025-01"])
}

func TestReduce_TagAndUntag(t *testing.T) {
	tag := tags.Tag{
		Category:   tags.CategoryPersonal,
		SubAccount: "Travel",
		TaggedAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	s0 := Empty()
	s1 := Reduce(s0, TagTransaction{ID: "txn-1", Tag: tag})
	require.Contains(t, s1.Tags, "txn-1")
	assert.Empty(t, s0.Tags)

	s2 := Reduce(s1, UntagTransaction{ID: "txn-1"})
	assert.NotContains(t, s2.Tags, "txn-1")
	assert.Contains(t, s1.Tags, "txn-1")
}

func TestReduce_AddSubAccount(t *testing.T) {
	s := Reduce(Empty(), AddSubAccount{Category: tags.CategoryPersonal, Name: "Travel"})
	s = Reduce(s, AddSubAccount{Category: tags.CategoryPersonal, Name: "Travel"})
	s = Reduce(s, AddSubAccount{Category: tags.CategoryNonRecurring, Name: "Lawsuit"})

	assert.Equal(t, []string{"Travel"}, s.TagConfig.Personal)
	assert.Equal(t, []string{"Lawsuit"}, s.TagConfig.NonRecurring)
}

func TestReduce_LoadTags(t *testing.T) {
	s := Reduce(Empty(), LoadTags{
		Tags:   map[string]tags.Tag{"txn-1": {Category: tags.CategoryPersonal}},
		Config: tags.Config{Personal: []string{"Travel"}},
	})
	assert.Contains(t, s.Tags, "txn-1")
	assert.Equal(t, []string{"Travel"}, s.TagConfig.Personal)
}

func TestStore_DispatchSwapsSnapshots(t *testing.T) {
	store := NewStore()
	before := store.State()

	store.Dispatch(ToggleAccount{Code: "4000"})
	after := store.State()

	assert.Empty(t, before.ExpandedAccounts)
	assert.True(t, after.ExpandedAccounts["4000"])
}
