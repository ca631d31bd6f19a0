package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Transactions are created as draft or posted and only move forward:
// draft -> posted -> voided or reversed.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "draft"
	StatusPosted   TransactionStatus = "posted"
	StatusVoided   TransactionStatus = "voided"
	StatusReversed TransactionStatus = "reversed"
)

// JournalEntryLine is one debit-or-credit row within a transaction, tied to
// exactly one account. A legal line carries a nonzero debit or a nonzero
// credit, never both and never neither.
type JournalEntryLine struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`  // zero if credit side
	Credit      decimal.Decimal `json:"credit"` // zero if debit side
	Description string          `json:"description"`
}

// Transaction is a balanced set of journal lines recorded against the ledger.
type Transaction struct {
	ID                string            `json:"id"`
	TransactionNumber string            `json:"transactionNumber"` // "TXN-NNNNNN", monotonic per store
	TransactionDate   string            `json:"transactionDate"`   // economic event date, ISO YYYY-MM-DD
	EntryDate         time.Time         `json:"entryDate"`         // system timestamp of creation, immutable
	Description       string            `json:"description"`
	Lines             []JournalEntryLine `json:"lines"` // order preserved for display only
	Status            TransactionStatus `json:"status"`

	VoidedAt     *time.Time `json:"voidedAt"`
	VoidedReason string     `json:"voidedReason"`

	// Reversal links are set once and never retargeted.
	ReversedByTransactionID string `json:"reversedByTransactionId"`
	ReversesTransactionID   string `json:"reversesTransactionId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TotalDebits sums the debit side of all lines.
func (t Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range t.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (t Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range t.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// Touches reports whether any line references the account.
func (t Transaction) Touches(accountID string) bool {
	for _, line := range t.Lines {
		if line.AccountID == accountID {
			return true
		}
	}
	return false
}
