// Package export renders ledger collections and report shapes to delimited
// text. Serialization only: no validation, no mutation. A missing account
// lookup degrades to empty fields rather than failing the export.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/reports"
)

// writeRow emits one CSV record with every field double-quoted. The export
// contract quotes all fields, so encoding/csv's minimal quoting does not fit.
func writeRow(w io.Writer, fields ...string) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Accounts writes the chart of accounts.
func Accounts(w io.Writer, accounts []model.Account) error {
	if err := writeRow(w, "Code", "Name", "Type", "Subtype", "Description", "Active"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		err := writeRow(w,
			acct.Code,
			acct.Name,
			string(acct.Type),
			string(acct.Subtype),
			acct.Description,
			fmt.Sprintf("%t", acct.IsActive),
		)
		if err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

// Transactions writes one row per journal line; a transaction with three
// lines produces three rows sharing the same transaction fields.
func Transactions(w io.Writer, txns []model.Transaction, accounts []model.Account) error {
	byID := make(map[string]model.Account, len(accounts))
	for _, acct := range accounts {
		byID[acct.ID] = acct
	}

	header := []string{"Transaction #", "Date", "Entry Date", "Description", "Status",
		"Account Code", "Account Name", "Debit", "Credit"}
	if err := writeRow(w, header...); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, txn := range txns {
		for _, line := range txn.Lines {
			acct := byID[line.AccountID] // zero value on miss: empty code and name
			err := writeRow(w,
				txn.TransactionNumber,
				txn.TransactionDate,
				model.FormatDate(txn.EntryDate),
				txn.Description,
				string(txn.Status),
				acct.Code,
				acct.Name,
				amount(line.Debit),
				amount(line.Credit),
			)
			if err != nil {
				return fmt.Errorf("writing transaction %s: %w", txn.TransactionNumber, err)
			}
		}
	}
	return nil
}

// GeneralLedger writes a titled per-account activity report.
func GeneralLedger(w io.Writer, gl reports.GeneralLedger) error {
	title := fmt.Sprintf("General Ledger - %s %s", gl.Account.Code, gl.Account.Name)
	if err := writeRow(w, title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := writeRow(w, ""); err != nil {
		return fmt.Errorf("writing preamble: %w", err)
	}
	if err := writeRow(w, "Date", "Transaction #", "Description", "Debit", "Credit", "Balance"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, entry := range gl.Entries {
		err := writeRow(w,
			entry.TransactionDate,
			entry.TransactionNumber,
			entry.Description,
			amount(entry.Debit),
			amount(entry.Credit),
			entry.Balance.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("writing entry %s: %w", entry.TransactionNumber, err)
		}
	}
	return nil
}

// BalanceSheet writes the position statement in sections, one total row per
// section. Retained earnings shows inside the Equity section total only.
func BalanceSheet(w io.Writer, bs reports.BalanceSheet) error {
	if err := writeRow(w, fmt.Sprintf("Balance Sheet as of %s", bs.AsOf)); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	sections := []struct {
		name    string
		entries []reports.Entry
		total   decimal.Decimal
	}{
		{"Assets", bs.Assets, bs.TotalAssets},
		{"Liabilities", bs.Liabilities, bs.TotalLiabilities},
		{"Equity", bs.Equity, bs.TotalEquity},
	}

	for _, section := range sections {
		if err := writeSection(w, section.name, "Balance", section.entries, section.total); err != nil {
			return err
		}
	}
	return nil
}

// IncomeStatement writes revenue and expense sections plus a net income row.
func IncomeStatement(w io.Writer, is reports.IncomeStatement) error {
	title := fmt.Sprintf("Income Statement %s to %s", is.StartDate, is.EndDate)
	if err := writeRow(w, title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	if err := writeSection(w, "Revenue", "Amount", is.Revenue, is.TotalRevenue); err != nil {
		return err
	}
	if err := writeSection(w, "Expenses", "Amount", is.Expenses, is.TotalExpenses); err != nil {
		return err
	}
	if err := writeRow(w, "", "Net Income", is.NetIncome.StringFixed(2)); err != nil {
		return fmt.Errorf("writing net income: %w", err)
	}
	return nil
}

// writeSection emits a section header, the entry rows, and a total row.
func writeSection(w io.Writer, name, amountHeader string, entries []reports.Entry, total decimal.Decimal) error {
	if err := writeRow(w, name); err != nil {
		return fmt.Errorf("writing section %s: %w", name, err)
	}
	if err := writeRow(w, "Account Code", "Account Name", amountHeader); err != nil {
		return fmt.Errorf("writing section %s header: %w", name, err)
	}
	for _, entry := range entries {
		if err := writeRow(w, entry.Account.Code, entry.Account.Name, entry.Balance.StringFixed(2)); err != nil {
			return fmt.Errorf("writing section %s row: %w", name, err)
		}
	}
	if err := writeRow(w, "", "Total "+name, total.StringFixed(2)); err != nil {
		return fmt.Errorf("writing section %s total: %w", name, err)
	}
	return nil
}

// TrialBalance writes the debit/credit listing with a totals row.
func TrialBalance(w io.Writer, tb reports.TrialBalance) error {
	if err := writeRow(w, fmt.Sprintf("Trial Balance as of %s", tb.AsOf)); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := writeRow(w, "Account Code", "Account Name", "Debit", "Credit"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range tb.Rows {
		if err := writeRow(w, row.Account.Code, row.Account.Name, amount(row.Debit), amount(row.Credit)); err != nil {
			return fmt.Errorf("writing row %s: %w", row.Account.Code, err)
		}
	}
	if err := writeRow(w, "", "Totals", tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2)); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return nil
}

// amount renders a debit/credit cell: fixed two decimals, zero as "0.00".
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
