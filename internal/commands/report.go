package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/plview-dev/plview/internal/config"
	"github.com/plview-dev/plview/internal/model"
	"github.com/plview-dev/plview/internal/plstate"
	"github.com/plview-dev/plview/internal/report"
	"github.com/plview-dev/plview/internal/tags"
)

var hundred = decimal.NewFromInt(100)

var sectionTitles = map[model.PLSection]string{
	model.SectionRevenue:     "Revenue",
	model.SectionCOGS:        "Cost of Goods Sold",
	model.SectionCostOfSales: "Cost of Sales",
	model.SectionOpEx:        "Operating Expenses",
	model.SectionOtherIncome: "Other Income",
}

func newReportCommand() *cobra.Command {
	var cfgPath, tagsPath, from, to string

	cmd := &cobra.Command{
		Use:   "report <export.csv>",
		Short: "Render the monthly P&L report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if from != "" {
				cfg.Report.FromMonth = from
			}
			if to != "" {
				cfg.Report.ToMonth = to
			}
			tagFile, err := loadTags(tagsPath)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), args[0], cfg, tagFile)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to plview.yaml")
	cmd.Flags().StringVar(&tagsPath, "tags", "", "path to tags.yaml")
	cmd.Flags().StringVar(&from, "from", "", "first month of the window (YYYY-MM)")
	cmd.Flags().StringVar(&to, "to", "", "last month of the window (YYYY-MM)")

	return cmd
}

func runReport(out io.Writer, path string, cfg *config.Config, tagFile *tags.File) error {
	store := plstate.NewStore()
	if err := load(store, path, cfg, tagFile); err != nil {
		return err
	}
	renderReport(out, store.State())
	return nil
}

// renderReport writes the hierarchical P&L from one state snapshot. It reads
// the snapshot only; nothing here touches the engine.
func renderReport(out io.Writer, st plstate.PLState) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "Account")
	for _, m := range st.Months {
		fmt.Fprintf(tw, "\t%s", report.FormatMonth(m))
	}
	fmt.Fprint(tw, "\tYTD\n")

	for _, section := range model.Sections {
		roots := sectionRoots(st.Accounts, section)
		if len(roots) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t\n", sectionTitles[section])
		for _, code := range roots {
			renderRow(tw, st, code)
		}
	}
	tw.Flush()

	renderSummary(out, st.Summary)
	if st.SkippedRows > 0 {
		fmt.Fprintf(out, "\n%d rows skipped or excluded; run check for detail\n", st.SkippedRows)
	}
}

func renderRow(tw io.Writer, st plstate.PLState, code string) {
	row, ok := st.Rows[code]
	if !ok {
		return
	}
	indent := strings.Repeat("  ", row.Account.Depth)
	fmt.Fprintf(tw, "%s%s %s", indent, row.AccountCode, row.Account.Name)
	for _, m := range st.Months {
		fmt.Fprintf(tw, "\t%s", report.FormatCurrency(row.MonthlyAmounts[m]))
	}
	fmt.Fprintf(tw, "\t%s\n", report.FormatCurrency(row.YTDTotal))

	for _, child := range row.Account.Children {
		renderRow(tw, st, child)
	}
}

func renderSummary(out io.Writer, s model.PLSummary) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\n")
	fmt.Fprintf(tw, "Gross Revenue\t%s\n", report.FormatCurrency(s.GrossRevenue))
	fmt.Fprintf(tw, "Net Revenue\t%s\n", report.FormatCurrency(s.NetRevenue))
	fmt.Fprintf(tw, "Total COGS\t%s\n", report.FormatCurrency(s.TotalCOGS))
	fmt.Fprintf(tw, "Total Cost of Sales\t%s\n", report.FormatCurrency(s.TotalCostOfSales))
	fmt.Fprintf(tw, "Gross Profit\t%s\n", report.FormatCurrency(s.GrossProfit))
	fmt.Fprintf(tw, "Gross Margin\t%s%%\n", s.GrossMargin.Mul(hundred).StringFixed(1))
	fmt.Fprintf(tw, "Operating Expenses\t%s\n", report.FormatCurrency(s.TotalOpEx))
	fmt.Fprintf(tw, "Other Income\t%s\n", report.FormatCurrency(s.OtherIncome))
	fmt.Fprintf(tw, "Net Income\t%s\n", report.FormatCurrency(s.NetIncome))
	fmt.Fprintf(tw, "Net Margin\t%s%%\n", s.NetMargin.Mul(hundred).StringFixed(1))
	if s.TaggedItemsCount > 0 {
		fmt.Fprintf(tw, "Tagged Items\t%d (%s)\n", s.TaggedItemsCount, report.FormatCurrency(s.TaggedAmount))
	}
	tw.Flush()
}

// sectionRoots returns the codes of a section's root accounts in code order.
func sectionRoots(accts map[string]model.Account, section model.PLSection) []string {
	var codes []string
	for code, a := range accts {
		if a.Section == section && a.ParentCode == "" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
