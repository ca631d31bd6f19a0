package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crania-dev/crania/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func account(id, code string, accountType model.AccountType) model.Account {
	return model.Account{ID: id, Code: code, Name: id, Type: accountType, IsActive: true}
}

func line(accountID, debit, credit string) model.JournalEntryLine {
	return model.JournalEntryLine{AccountID: accountID, Debit: dec(debit), Credit: dec(credit)}
}

func txnOn(date string, lines ...model.JournalEntryLine) model.Transaction {
	return model.Transaction{
		TransactionDate: date,
		EntryDate:       mustTime(date),
		Status:          model.StatusPosted,
		Lines:           lines,
	}
}

func mustTime(date string) time.Time {
	ts, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return ts
}

func testChart() []model.Account {
	return []model.Account{
		account("cash", "1000", model.AccountTypeAsset),
		account("loan", "2500", model.AccountTypeLiability),
		account("equity", "3000", model.AccountTypeEquity),
		account("sales", "4000", model.AccountTypeRevenue),
		account("rent", "6000", model.AccountTypeExpense),
	}
}

func TestComputeBalanceSheet(t *testing.T) {
	accounts := testChart()
	txns := []model.Transaction{
		// Owner puts in 1000 cash.
		txnOn("2024-01-01", line("cash", "1000", "0"), line("equity", "0", "1000")),
		// Sell 500 for cash.
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
		// Pay 200 rent.
		txnOn("2024-01-15", line("rent", "200", "0"), line("cash", "0", "200")),
		// Borrow 300.
		txnOn("2024-01-20", line("cash", "300", "0"), line("loan", "0", "300")),
	}

	bs := ComputeBalanceSheet(accounts, txns, "2024-01-31")

	require.Len(t, bs.Assets, 1)
	assert.True(t, bs.Assets[0].Balance.Equal(dec("1600")), "cash %s", bs.Assets[0].Balance)
	require.Len(t, bs.Liabilities, 1)
	require.Len(t, bs.Equity, 1)

	assert.True(t, bs.RetainedEarnings.Equal(dec("300")), "retained %s", bs.RetainedEarnings)
	assert.True(t, bs.TotalAssets.Equal(dec("1600")))
	assert.True(t, bs.TotalLiabilities.Equal(dec("300")))
	assert.True(t, bs.TotalEquity.Equal(dec("1300")), "equity 1000 + retained 300")

	// Assets = liabilities + equity.
	assert.True(t, bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity)))
}

func TestComputeBalanceSheetAsOfCutoff(t *testing.T) {
	accounts := testChart()
	txns := []model.Transaction{
		txnOn("2024-01-01", line("cash", "1000", "0"), line("equity", "0", "1000")),
		txnOn("2024-02-15", line("cash", "500", "0"), line("sales", "0", "500")),
	}

	bs := ComputeBalanceSheet(accounts, txns, "2024-01-31")
	require.Len(t, bs.Assets, 1)
	assert.True(t, bs.Assets[0].Balance.Equal(dec("1000")), "february activity excluded")
	assert.True(t, bs.RetainedEarnings.IsZero())
}

func TestComputeBalanceSheetExcludesDraftsAndVoided(t *testing.T) {
	accounts := testChart()
	draft := txnOn("2024-01-05", line("cash", "999", "0"), line("sales", "0", "999"))
	draft.Status = model.StatusDraft
	voided := txnOn("2024-01-06", line("cash", "888", "0"), line("sales", "0", "888"))
	voided.Status = model.StatusVoided

	txns := []model.Transaction{
		txnOn("2024-01-01", line("cash", "100", "0"), line("equity", "0", "100")),
		draft,
		voided,
	}

	bs := ComputeBalanceSheet(accounts, txns, "2024-12-31")
	require.Len(t, bs.Assets, 1)
	assert.True(t, bs.Assets[0].Balance.Equal(dec("100")))
}

func TestComputeBalanceSheetSkipsZeroAndInactive(t *testing.T) {
	accounts := testChart()
	inactive := account("old-equip", "1500", model.AccountTypeAsset)
	inactive.IsActive = false
	accounts = append(accounts, inactive)

	txns := []model.Transaction{
		txnOn("2024-01-01", line("cash", "100", "0"), line("equity", "0", "100")),
		txnOn("2024-01-02", line("old-equip", "50", "0"), line("cash", "0", "50")),
	}

	bs := ComputeBalanceSheet(accounts, txns, "2024-12-31")
	for _, entry := range bs.Assets {
		assert.NotEqual(t, "old-equip", entry.Account.ID, "inactive accounts get no entry")
	}
	// Loan never moved, so no liability entry either.
	assert.Empty(t, bs.Liabilities)
}

func TestComputeIncomeStatement(t *testing.T) {
	accounts := testChart()
	txns := []model.Transaction{
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
		txnOn("2024-01-15", line("rent", "200", "0"), line("cash", "0", "200")),
		// Outside the range.
		txnOn("2024-03-01", line("cash", "900", "0"), line("sales", "0", "900")),
	}

	is := ComputeIncomeStatement(accounts, txns, "2024-01-01", "2024-01-31")

	require.Len(t, is.Revenue, 1)
	require.Len(t, is.Expenses, 1)
	assert.True(t, is.TotalRevenue.Equal(dec("500")))
	assert.True(t, is.TotalExpenses.Equal(dec("200")))
	assert.True(t, is.NetIncome.Equal(dec("300")))
}

func TestComputeIncomeStatementOpenBounds(t *testing.T) {
	accounts := testChart()
	txns := []model.Transaction{
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
		txnOn("2024-03-01", line("cash", "900", "0"), line("sales", "0", "900")),
	}

	is := ComputeIncomeStatement(accounts, txns, "", "")
	assert.True(t, is.TotalRevenue.Equal(dec("1400")), "empty bounds include everything")

	is = ComputeIncomeStatement(accounts, txns, "2024-02-01", "")
	assert.True(t, is.TotalRevenue.Equal(dec("900")))
}

func TestComputeGeneralLedgerRunningBalance(t *testing.T) {
	cash := account("cash", "1000", model.AccountTypeAsset)
	txns := []model.Transaction{
		txnOn("2024-01-01", line("cash", "1000", "0"), line("equity", "0", "1000")),
		txnOn("2024-01-15", line("rent", "200", "0"), line("cash", "0", "200")),
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
	}

	gl := ComputeGeneralLedger(cash, txns, "", "")

	require.Len(t, gl.Entries, 3)
	// Entries come out in transaction-date order regardless of input order.
	assert.Equal(t, "2024-01-01", gl.Entries[0].TransactionDate)
	assert.Equal(t, "2024-01-10", gl.Entries[1].TransactionDate)
	assert.Equal(t, "2024-01-15", gl.Entries[2].TransactionDate)

	assert.True(t, gl.Entries[0].Balance.Equal(dec("1000")))
	assert.True(t, gl.Entries[1].Balance.Equal(dec("1500")))
	assert.True(t, gl.Entries[2].Balance.Equal(dec("1300")))
}

func TestComputeGeneralLedgerSameDateUsesEntryOrder(t *testing.T) {
	cash := account("cash", "1000", model.AccountTypeAsset)
	first := txnOn("2024-01-10", line("cash", "100", "0"), line("sales", "0", "100"))
	first.EntryDate = mustTime("2024-01-10")
	second := txnOn("2024-01-10", line("cash", "0", "40"), line("rent", "40", "0"))
	second.EntryDate = first.EntryDate.Add(time.Hour)

	gl := ComputeGeneralLedger(cash, []model.Transaction{second, first}, "", "")

	require.Len(t, gl.Entries, 2)
	assert.True(t, gl.Entries[0].Balance.Equal(dec("100")))
	assert.True(t, gl.Entries[1].Balance.Equal(dec("60")))
}

func TestComputeGeneralLedgerReversalPairNetsToZero(t *testing.T) {
	cash := account("cash", "1000", model.AccountTypeAsset)
	orig := txnOn("2024-01-05", line("cash", "50", "0"), line("sales", "0", "50"))
	orig.Status = model.StatusReversed
	rev := txnOn("2024-01-06", line("cash", "0", "50"), line("sales", "50", "0"))

	gl := ComputeGeneralLedger(cash, []model.Transaction{orig, rev}, "", "")

	// Reversed originals still report; the pair nets out.
	require.Len(t, gl.Entries, 2)
	assert.True(t, gl.Entries[1].Balance.IsZero())
}

func TestComputeGeneralLedgerDescriptionFallsBackToTransaction(t *testing.T) {
	cash := account("cash", "1000", model.AccountTypeAsset)
	txn := txnOn("2024-01-05",
		model.JournalEntryLine{AccountID: "cash", Debit: dec("10"), Description: "deposit"},
		model.JournalEntryLine{AccountID: "sales", Credit: dec("10")},
	)
	txn.Description = "cash sale"

	gl := ComputeGeneralLedger(cash, []model.Transaction{txn}, "", "")
	require.Len(t, gl.Entries, 1)
	assert.Equal(t, "deposit", gl.Entries[0].Description)

	txn.Lines[0].Description = ""
	gl = ComputeGeneralLedger(cash, []model.Transaction{txn}, "", "")
	assert.Equal(t, "cash sale", gl.Entries[0].Description)
}

func TestComputeGeneralLedgerCreditNormal(t *testing.T) {
	sales := account("sales", "4000", model.AccountTypeRevenue)
	txns := []model.Transaction{
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
	}

	gl := ComputeGeneralLedger(sales, txns, "", "")
	require.Len(t, gl.Entries, 1)
	assert.True(t, gl.Entries[0].Balance.Equal(dec("500")), "credits grow a revenue balance")
}

func TestComputeTrialBalance(t *testing.T) {
	accounts := testChart()
	txns := []model.Transaction{
		txnOn("2024-01-01", line("cash", "1000", "0"), line("equity", "0", "1000")),
		txnOn("2024-01-10", line("cash", "500", "0"), line("sales", "0", "500")),
		txnOn("2024-01-15", line("rent", "200", "0"), line("cash", "0", "200")),
	}

	tb := ComputeTrialBalance(accounts, txns, "2024-12-31")

	require.Len(t, tb.Rows, 4)
	// Sorted by account code.
	assert.Equal(t, "1000", tb.Rows[0].Account.Code)
	assert.Equal(t, "3000", tb.Rows[1].Account.Code)
	assert.Equal(t, "4000", tb.Rows[2].Account.Code)
	assert.Equal(t, "6000", tb.Rows[3].Account.Code)

	// Each row fills exactly one column.
	for _, row := range tb.Rows {
		assert.True(t, row.Debit.IsZero() != row.Credit.IsZero(), "row %s", row.Account.Code)
	}

	assert.True(t, tb.TotalDebits.Equal(dec("1500")))
	assert.True(t, tb.TotalCredits.Equal(dec("1500")))
	assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits), "balanced books balance the trial")
}

func TestComputeTrialBalanceNegativeFlipsColumn(t *testing.T) {
	cash := account("cash", "1000", model.AccountTypeAsset)
	equity := account("equity", "3000", model.AccountTypeEquity)
	// Cash driven negative: the asset shows up in the credit column.
	txns := []model.Transaction{
		txnOn("2024-01-01", line("equity", "100", "0"), line("cash", "0", "100")),
	}

	tb := ComputeTrialBalance([]model.Account{cash, equity}, txns, "2024-12-31")

	require.Len(t, tb.Rows, 2)
	assert.True(t, tb.Rows[0].Credit.Equal(dec("100")), "negative cash flips to credit")
	assert.True(t, tb.Rows[0].Debit.IsZero())
	assert.True(t, tb.Rows[1].Debit.Equal(dec("100")), "negative equity flips to debit")
}
