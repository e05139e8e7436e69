package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plview-dev/plview/internal/config"
	"github.com/plview-dev/plview/internal/plstate"
	"github.com/plview-dev/plview/internal/tags"
)

const sampleExport = `Date,Transaction Type,Num,Name,Class,Account,Memo,Amount,Balance
01/15/2025,Invoice,1001,Acme Corp,,4000 Sales,January order,"1,000.00","1,000.00"
01/20/2025,Credit Memo,1002,Acme Corp,,4000 Sales:4010 Discounts,Promo,(50.00),950.00
01/22/2025,Bill,1003,Widget Supply,,5000 Cost of Goods Sold,Widgets,300.00,650.00
`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func emptyTags() *tags.File {
	return &tags.File{Tags: map[string]tags.Tag{}}
}

func TestRunReport(t *testing.T) {
	path := writeExport(t, sampleExport)

	var out bytes.Buffer
	err := runReport(&out, path, config.Default(), emptyTags())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Revenue")
	assert.Contains(t, got, "4000 Sales")
	assert.Contains(t, got, "4010 Discounts")
	assert.Contains(t, got, "$950.00")
	assert.Contains(t, got, "Gross Profit")
	assert.Contains(t, got, "$650.00")
	assert.Contains(t, got, "68.4%")
}

func TestRunReport_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runReport(&out, filepath.Join(t.TempDir(), "nope.csv"), config.Default(), emptyTags())
	assert.Error(t, err)
}

func TestLoad_PublishesSingleSnapshot(t *testing.T) {
	path := writeExport(t, sampleExport)

	store := plstate.NewStore()
	require.NoError(t, load(store, path, config.Default(), emptyTags()))

	st := store.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	assert.Len(t, st.Transactions, 3)
	assert.Equal(t, []string{"2025-01"}, st.Months)
	assert.Equal(t, 0, st.SkippedRows)
	assert.True(t, st.Summary.GrossProfit.Equal(st.Summary.NetIncome))
}

func TestLoad_TagsArriveWithData(t *testing.T) {
	path := writeExport(t, sampleExport)

	tagFile := &tags.File{Tags: map[string]tags.Tag{
		"txn-01-15-2025-4000Sales-0": {Category: tags.CategoryPersonal},
	}}

	store := plstate.NewStore()
	require.NoError(t, load(store, path, config.Default(), tagFile))

	// Rows and tags land in one snapshot; no intermediate state carries
	// one without the other.
	st := store.State()
	assert.Len(t, st.Tags, 1)
	assert.Equal(t, 1, st.Summary.TaggedItemsCount)
	assert.Equal(t, "1000.00", st.Summary.TaggedAmount.StringFixed(2))
}

func TestLoad_ErrorStateOnMissingFile(t *testing.T) {
	store := plstate.NewStore()
	err := load(store, filepath.Join(t.TempDir(), "nope.csv"), config.Default(), emptyTags())
	require.Error(t, err)

	st := store.State()
	assert.False(t, st.Loading)
	assert.NotEmpty(t, st.Err)
	assert.Empty(t, st.Transactions)
}

func TestLoad_ErrorStateOnEmptyInput(t *testing.T) {
	path := writeExport(t, "")

	store := plstate.NewStore()
	err := load(store, path, config.Default(), emptyTags())
	require.Error(t, err)
	assert.NotEmpty(t, store.State().Err)
}

func TestLoad_Idempotent(t *testing.T) {
	path := writeExport(t, sampleExport)

	s1 := plstate.NewStore()
	s2 := plstate.NewStore()
	require.NoError(t, load(s1, path, config.Default(), emptyTags()))
	require.NoError(t, load(s2, path, config.Default(), emptyTags()))

	assert.Equal(t, s1.State(), s2.State())
}

func TestLoad_WindowFilter(t *testing.T) {
	export := sampleExport +
		"03/10/2025,Invoice,1004,Acme Corp,,4000 Sales,March order,200.00,850.00\n"
	path := writeExport(t, export)

	cfg := config.Default()
	cfg.Report.FromMonth = "2025-01"
	cfg.Report.ToMonth = "2025-01"

	store := plstate.NewStore()
	require.NoError(t, load(store, path, cfg, emptyTags()))

	st := store.State()
	assert.Len(t, st.Transactions, 3)
	assert.Equal(t, []string{"2025-01"}, st.Months)
}

func TestRunCheck_FlagsIssues(t *testing.T) {
	export := sampleExport +
		"01/25/2025,Journal Entry,1005,,,9999 Unknown:???,Mystery,10.00,970.00\n"
	path := writeExport(t, export)

	var out bytes.Buffer
	err := runCheck(&out, path)
	require.Error(t, err)
	assert.Contains(t, out.String(), "excluded-account")
}

func TestRunCheck_PassesHeaderDelimitedExport(t *testing.T) {
	// A double-entry export mirrors every P&L row under a balance-sheet
	// section. Those mirror rows must not fail the check.
	export := "4000 Sales,,,,,,,,\n" +
		`,01/15/2025,Invoice,1001,Acme Corp,,1000 Checking,January order,"1,000.00","1,000.00"` + "\n" +
		"Total for 4000 Sales,,,,,,,,\n" +
		"Checking,,,,,,,,\n" +
		",01/15/2025,Invoice,1001,Acme Corp,,4000 Sales,January order,\"-1,000.00\",0.00\n"
	path := writeExport(t, export)

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, path))
	assert.Contains(t, out.String(), "offsetting:   1")
}

func TestRunCheck_CleanExport(t *testing.T) {
	path := writeExport(t, sampleExport)

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, path))
	assert.Contains(t, out.String(), "loaded:       3")
}

func TestRunAccounts(t *testing.T) {
	path := writeExport(t, sampleExport)

	var out bytes.Buffer
	require.NoError(t, runAccounts(&out, path))
	got := out.String()
	assert.Contains(t, got, "4000")
	assert.Contains(t, got, "Discounts")
	assert.Contains(t, got, "revenue")
}
