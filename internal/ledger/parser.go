package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plview-dev/plview/internal/accounts"
	"github.com/plview-dev/plview/internal/id"
	"github.com/plview-dev/plview/internal/model"
)

// Ledger exports carry a fixed column order. Some exporters prepend an empty
// indent column; the parser detects and shifts past it per row.
const (
	numFields  = 9
	dateFormat = "01/02/2006"
	colDate    = 0
	colType    = 1
	colNum     = 2
	colName    = 3
	colClass   = 4
	colAccount = 5
	colMemo    = 6
	colAmount  = 7
	colBalance = 8
)

// LoadStats accounts for every row of an export. Skipped and Excluded back
// the "loaded with N rows skipped" rendering; Issues carry the detail.
// Offsetting rows are not issues: a double-entry export mirrors every P&L
// row under a balance-sheet section, so their presence is expected.
type LoadStats struct {
	RowsRead   int // records scanned, structural lines included
	Loaded     int // transactions admitted to aggregation
	Skipped    int // rows with no parseable date that are not structural
	Excluded   int // rows whose account has no classifiable P&L code
	Offsetting int // rows under a balance-sheet section header
	Issues     []model.Issue
}

// Result is an ordered parse of one ledger export.
type Result struct {
	Transactions []model.Transaction
	Stats        LoadStats
}

// Parse reads a delimited ledger export and returns typed transactions plus
// load statistics. A bad line is recorded, never fatal; only an unreadable
// input returns an error.
//
// Section-header rows (one non-empty cell) set the account for the rows that
// follow, because in header-delimited exports the account column holds the
// offsetting balance-sheet account. Exports without headers fall back to the
// per-row account column.
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger export: %w", err)
	}
	// Normalize line endings; some exporters emit bare CR.
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &Result{}
	currentSection := ""
	currentSectionCode := ""

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ledger export: %w", err)
		}
		line, _ := cr.FieldPos(0)
		res.Stats.RowsRead++

		if allEmpty(rec) {
			continue
		}

		// Subtotal rows look like section headers; they must not change the
		// active section.
		if strings.HasPrefix(strings.TrimSpace(rec[0]), "Total for") {
			continue
		}

		// Section header: a lone label, remaining cells empty.
		if len(rec) > 1 && rec[0] != "" && allEmpty(rec[1:]) {
			currentSection = strings.TrimSpace(rec[0])
			currentSectionCode, _ = accounts.SplitPath(currentSection)
			continue
		}

		// Tolerate a leading indent column.
		off := 0
		if len(rec) > numFields && rec[0] == "" {
			off = 1
		}
		if len(rec) < off+numFields {
			res.Stats.Skipped++
			res.Stats.Issues = append(res.Stats.Issues, model.Issue{
				Kind:   model.IssueMalformedRow,
				Row:    line,
				Detail: fmt.Sprintf("expected %d fields, got %d", numFields, len(rec)-off),
			})
			continue
		}

		dateField := strings.TrimSpace(rec[off+colDate])
		if strings.EqualFold(dateField, "Date") {
			// Column-header row of a flat export.
			continue
		}

		date, err := time.Parse(dateFormat, dateField)
		if err != nil {
			res.Stats.Skipped++
			res.Stats.Issues = append(res.Stats.Issues, model.Issue{
				Kind:   model.IssueMalformedRow,
				Row:    line,
				Detail: fmt.Sprintf("no parseable date in %q", dateField),
			})
			continue
		}

		// Resolve the account. While a header-delimited section is active the
		// section label wins over the account column.
		accountFullName := strings.TrimSpace(rec[off+colAccount])
		if currentSection != "" {
			if !accounts.IsPLCode(currentSectionCode) {
				// The offsetting side of a double-entry export. Counted,
				// not reported: every healthy export carries these rows.
				res.Stats.Offsetting++
				continue
			}
			accountFullName = currentSection
		}

		code, parentCode := accounts.SplitPath(accountFullName)
		if code == "" || !accounts.IsPLCode(code) {
			res.Stats.Excluded++
			res.Stats.Issues = append(res.Stats.Issues, model.Issue{
				Kind:   model.IssueExcludedAccount,
				Row:    line,
				Detail: fmt.Sprintf("account %q has no P&L code", accountFullName),
			})
			continue
		}

		amount, err := ParseAmount(rec[off+colAmount])
		if err != nil {
			// The row still counts; its amount contributes zero.
			amount = decimal.Zero
			res.Stats.Issues = append(res.Stats.Issues, model.Issue{
				Kind:   model.IssueBadAmount,
				Row:    line,
				Detail: err.Error(),
			})
		}
		balance, err := ParseAmount(rec[off+colBalance])
		if err != nil {
			balance = decimal.Zero // informational only
		}

		raw := model.RawTransaction{
			Date:            date,
			Type:            strings.TrimSpace(rec[off+colType]),
			Num:             strings.TrimSpace(rec[off+colNum]),
			Name:            strings.TrimSpace(rec[off+colName]),
			Class:           strings.TrimSpace(rec[off+colClass]),
			Memo:            strings.TrimSpace(rec[off+colMemo]),
			AccountFullName: accountFullName,
			Amount:          amount,
			Balance:         balance,
		}
		res.Transactions = append(res.Transactions, model.Transaction{
			RawTransaction:    raw,
			ID:                id.Transaction(date, accountFullName, len(res.Transactions)),
			Month:             date.Format("2006-01"),
			AccountCode:       code,
			ParentAccountCode: parentCode,
		})
	}

	res.Stats.Loaded = len(res.Transactions)
	return res, nil
}

// DistinctAccounts returns the distinct accountFullName values in first-seen
// order, ready for forest construction.
func DistinctAccounts(txns []model.Transaction) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range txns {
		if !seen[t.AccountFullName] {
			seen[t.AccountFullName] = true
			names = append(names, t.AccountFullName)
		}
	}
	return names
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
