// Package reports derives financial views from the ledger collections. Every
// function here is pure over (accounts, transactions, parameters); the
// store's revision counter tells callers when to recompute.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/journal"
	"github.com/crania-dev/crania/internal/model"
)

// Entry pairs an account with its computed balance.
type Entry struct {
	Account model.Account
	Balance decimal.Decimal
}

// BalanceSheet is the position statement as of a date. TotalEquity includes
// retained earnings; the retained-earnings amount is reported separately but
// never appears as an individual equity entry.
type BalanceSheet struct {
	AsOf             string
	Assets           []Entry
	Liabilities      []Entry
	Equity           []Entry
	RetainedEarnings decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// IncomeStatement covers an inclusive date range.
type IncomeStatement struct {
	StartDate     string
	EndDate       string
	Revenue       []Entry
	Expenses      []Entry
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// LedgerEntry is one journal line against an account with the running
// balance after it. A transaction touching the account with two lines
// yields two entries.
type LedgerEntry struct {
	TransactionDate   string
	TransactionNumber string
	Description       string
	Debit             decimal.Decimal
	Credit            decimal.Decimal
	Balance           decimal.Decimal
}

// GeneralLedger is the per-account activity view.
type GeneralLedger struct {
	Account model.Account
	Entries []LedgerEntry
}

// TrialBalanceRow places an account's absolute balance in its debit or
// credit column, per its normal side. Exactly one column is nonzero.
type TrialBalanceRow struct {
	Account model.Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance lists every active account with a nonzero balance, sorted by
// account code.
type TrialBalance struct {
	AsOf         string
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// reportable excludes voided and draft transactions from every report.
func reportable(txn model.Transaction) bool {
	return txn.Status != model.StatusVoided && txn.Status != model.StatusDraft
}

// filterThrough keeps reportable transactions dated on or before asOf.
func filterThrough(txns []model.Transaction, asOf string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if reportable(txn) && txn.TransactionDate <= asOf {
			out = append(out, txn)
		}
	}
	return out
}

// filterRange keeps reportable transactions within [start, end] inclusive.
// Empty bounds are open.
func filterRange(txns []model.Transaction, start, end string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if !reportable(txn) {
			continue
		}
		if start != "" && txn.TransactionDate < start {
			continue
		}
		if end != "" && txn.TransactionDate > end {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// ComputeBalanceSheet builds the Balance Sheet as of a date. Retained
// earnings = revenue balances minus expense balances over the same filtered
// transaction set, folded into TotalEquity only. The engine reports the
// numbers even when assets != liabilities + equity; flagging the imbalance
// is the caller's job.
func ComputeBalanceSheet(accounts []model.Account, txns []model.Transaction, asOf string) BalanceSheet {
	filtered := filterThrough(txns, asOf)
	bs := BalanceSheet{AsOf: asOf}

	for _, acct := range accounts {
		switch acct.Type {
		case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity:
			if !acct.IsActive {
				continue
			}
			balance := journal.BalanceOf(acct, filtered)
			if balance.IsZero() {
				continue
			}
			entry := Entry{Account: acct, Balance: balance}
			switch acct.Type {
			case model.AccountTypeAsset:
				bs.Assets = append(bs.Assets, entry)
				bs.TotalAssets = bs.TotalAssets.Add(balance)
			case model.AccountTypeLiability:
				bs.Liabilities = append(bs.Liabilities, entry)
				bs.TotalLiabilities = bs.TotalLiabilities.Add(balance)
			case model.AccountTypeEquity:
				bs.Equity = append(bs.Equity, entry)
				bs.TotalEquity = bs.TotalEquity.Add(balance)
			}
		case model.AccountTypeRevenue:
			bs.RetainedEarnings = bs.RetainedEarnings.Add(journal.BalanceOf(acct, filtered))
		case model.AccountTypeExpense:
			bs.RetainedEarnings = bs.RetainedEarnings.Sub(journal.BalanceOf(acct, filtered))
		}
	}

	bs.RetainedEarnings = model.Round2(bs.RetainedEarnings)
	bs.TotalAssets = model.Round2(bs.TotalAssets)
	bs.TotalLiabilities = model.Round2(bs.TotalLiabilities)
	bs.TotalEquity = model.Round2(bs.TotalEquity.Add(bs.RetainedEarnings))
	return bs
}

// ComputeIncomeStatement builds the Income Statement for an inclusive range.
func ComputeIncomeStatement(accounts []model.Account, txns []model.Transaction, startDate, endDate string) IncomeStatement {
	filtered := filterRange(txns, startDate, endDate)
	is := IncomeStatement{StartDate: startDate, EndDate: endDate}

	for _, acct := range accounts {
		switch acct.Type {
		case model.AccountTypeRevenue, model.AccountTypeExpense:
		default:
			continue
		}
		balance := journal.BalanceOf(acct, filtered)
		if balance.IsZero() {
			continue
		}
		entry := Entry{Account: acct, Balance: balance}
		if acct.Type == model.AccountTypeRevenue {
			is.Revenue = append(is.Revenue, entry)
			is.TotalRevenue = is.TotalRevenue.Add(balance)
		} else {
			is.Expenses = append(is.Expenses, entry)
			is.TotalExpenses = is.TotalExpenses.Add(balance)
		}
	}

	is.TotalRevenue = model.Round2(is.TotalRevenue)
	is.TotalExpenses = model.Round2(is.TotalExpenses)
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)
	return is
}

// ComputeGeneralLedger walks the account's activity in (transactionDate,
// entryDate) order, emitting one entry per matching line with a running
// balance rounded after each step. Date bounds are optional ("" = open).
func ComputeGeneralLedger(account model.Account, txns []model.Transaction, startDate, endDate string) GeneralLedger {
	var matching []model.Transaction
	for _, txn := range filterRange(txns, startDate, endDate) {
		if txn.Touches(account.ID) {
			matching = append(matching, txn)
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].TransactionDate != matching[j].TransactionDate {
			return matching[i].TransactionDate < matching[j].TransactionDate
		}
		return matching[i].EntryDate.Before(matching[j].EntryDate)
	})

	gl := GeneralLedger{Account: account}
	debitNormal := account.Type.NormalSide() == model.SideDebit
	running := decimal.Zero

	for _, txn := range matching {
		for _, line := range txn.Lines {
			if line.AccountID != account.ID {
				continue
			}
			if debitNormal {
				running = running.Add(line.Debit.Sub(line.Credit))
			} else {
				running = running.Add(line.Credit.Sub(line.Debit))
			}
			running = model.Round2(running)

			description := line.Description
			if description == "" {
				description = txn.Description
			}
			gl.Entries = append(gl.Entries, LedgerEntry{
				TransactionDate:   txn.TransactionDate,
				TransactionNumber: txn.TransactionNumber,
				Description:       description,
				Debit:             line.Debit,
				Credit:            line.Credit,
				Balance:           running,
			})
		}
	}
	return gl
}

// ComputeTrialBalance lists active accounts with nonzero balances as of a
// date, each balance placed in the column of its normal side (or the
// opposite column when negative), sorted by account code.
func ComputeTrialBalance(accounts []model.Account, txns []model.Transaction, asOf string) TrialBalance {
	filtered := filterThrough(txns, asOf)
	tb := TrialBalance{AsOf: asOf}

	for _, acct := range accounts {
		if !acct.IsActive {
			continue
		}
		balance := journal.BalanceOf(acct, filtered)
		if balance.IsZero() {
			continue
		}

		row := TrialBalanceRow{Account: acct}
		onDebitSide := acct.Type.NormalSide() == model.SideDebit
		if balance.IsNegative() {
			onDebitSide = !onDebitSide
		}
		if onDebitSide {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits = tb.TotalDebits.Add(row.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(row.Credit)
	}

	sort.SliceStable(tb.Rows, func(i, j int) bool {
		return tb.Rows[i].Account.Code < tb.Rows[j].Account.Code
	})

	tb.TotalDebits = model.Round2(tb.TotalDebits)
	tb.TotalCredits = model.Round2(tb.TotalCredits)
	return tb
}
