package commands

import (
	"fmt"
	"os"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/config"
	"github.com/plview-dev/plview/internal/ledger"
	"github.com/plview-dev/plview/internal/plstate"
	"github.com/plview-dev/plview/internal/report"
	"github.com/plview-dev/plview/internal/tags"
)

// load runs the whole pipeline (parse, classify, aggregate, summarize) for
// one export file and publishes the result into the store as a single
// snapshot swap. On failure the store carries the terminal error state and
// no partial data.
func load(store *plstate.Store, path string, cfg *config.Config, tagFile *tags.File) error {
	store.Dispatch(plstate.SetLoading{Loading: true})

	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("opening export: %w", err)
		store.Dispatch(plstate.SetError{Err: err.Error()})
		return err
	}
	defer f.Close()

	res, err := ledger.Parse(f)
	if err != nil {
		store.Dispatch(plstate.SetError{Err: err.Error()})
		return err
	}
	if res.Stats.RowsRead == 0 {
		err = fmt.Errorf("export %s is empty", path)
		store.Dispatch(plstate.SetError{Err: err.Error()})
		return err
	}

	txns := report.FilterMonths(res.Transactions, cfg.Report.FromMonth, cfg.Report.ToMonth)
	accts := accounts.BuildForest(ledger.DistinctAccounts(txns))
	agg := report.Aggregate(txns, accts)
	summary := report.Summarize(agg, accts, txns, report.SummaryOptions{
		ContraRevenueCodes: cfg.Revenue.ContraCodes,
		TaggedTransactions: tagFile.TaggedIDs(),
	})

	issues := append(res.Stats.Issues, agg.Issues...)
	store.Dispatch(plstate.LoadData{
		Transactions: txns,
		Accounts:     accts.Map(),
		Rows:         agg.Rows,
		Months:       agg.Months,
		Summary:      summary,
		Tags:         tagFile.Tags,
		TagConfig:    tagFile.Config,
		SkippedRows:  res.Stats.Skipped + res.Stats.Excluded,
		Issues:       issues,
	})
	return nil
}

// loadConfig reads the config file when given, otherwise defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadTags reads the tag store when given, otherwise an empty one.
func loadTags(path string) (*tags.File, error) {
	if path == "" {
		return &tags.File{Tags: map[string]tags.Tag{}}, nil
	}
	return tags.Load(path)
}
