package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/ledger"
)

func newAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts <export.csv>",
		Short: "Show the account forest derived from an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd.OutOrStdout(), args[0])
		},
	}
}

func runAccounts(out io.Writer, path string) error {
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

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Code\tName\tSection\tParent")
	for _, a := range accts.All() {
		indent := strings.Repeat("  ", a.Depth)
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n", indent, a.Code, a.Name, a.Section, a.ParentCode)
	}
	return tw.Flush()
}
