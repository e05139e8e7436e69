package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plview-dev/plview/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "plview",
		Short:   "Hierarchical P&L reporting from general-ledger exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
