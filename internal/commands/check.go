package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/ledger"
	"github.com/plview-dev/plview/internal/report"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <export.csv>",
		Short: "Report data-quality issues in an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	res, err := ledger.Parse(f)
	if err != nil {
		return err
	}
	accts := accounts.BuildForest(ledger.DistinctAccounts(res.Transactions))
	agg := report.Aggregate(res.Transactions, accts)

	fmt.Fprintf(out, "rows read:    %d\n", res.Stats.RowsRead)
	fmt.Fprintf(out, "loaded:       %d\n", res.Stats.Loaded)
	fmt.Fprintf(out, "skipped:      %d\n", res.Stats.Skipped)
	fmt.Fprintf(out, "excluded:     %d\n", res.Stats.Excluded)
	fmt.Fprintf(out, "offsetting:   %d\n", res.Stats.Offsetting)
	fmt.Fprintf(out, "accounts:     %d\n", accts.Len())
	fmt.Fprintf(out, "months:       %d\n", len(agg.Months))

	issues := append(res.Stats.Issues, agg.Issues...)
	for _, issue := range issues {
		fmt.Fprintln(out, issue)
	}
	if n := len(issues); n > 0 {
		return fmt.Errorf("%d data-quality issues", n)
	}
	return nil
}
