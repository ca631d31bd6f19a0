package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/crania-dev/crania/internal/id"
	"github.com/crania-dev/crania/internal/journal"
	"github.com/crania-dev/crania/internal/model"
)

// TransactionParams holds the caller-supplied fields of a new transaction.
type TransactionParams struct {
	TransactionDate string // ISO YYYY-MM-DD; defaults to today when empty
	Description     string
	Lines           []model.JournalEntryLine
}

// AddOptions controls transaction creation. The zero value creates a posted
// transaction.
type AddOptions struct {
	Status model.TransactionStatus
}

// BulkResult tallies a bulk lifecycle operation: partial success is the
// designed outcome, never an aggregate failure.
type BulkResult struct {
	Succeeded int
	Errors    []string
}

// BulkAddResult reports a bulk import.
type BulkAddResult struct {
	Added  []model.Transaction
	Errors []string
}

// AddTransaction validates the supplied lines and appends a new transaction.
// On validation failure the error is returned untouched and nothing mutates.
func (s *Store) AddTransaction(params TransactionParams, opts *AddOptions) (model.Transaction, error) {
	status := model.StatusPosted
	if opts != nil && opts.Status != "" {
		status = opts.Status
	}

	txn, err := s.addTransaction(params, status)
	if err != nil {
		return model.Transaction{}, err
	}
	return *txn, s.bump()
}

// AddBulkTransactions validates each candidate independently and creates the
// valid ones as drafts: bulk import intentionally lands unposted so every
// imported entry gets an explicit review step. Failures are collected per
// item and do not abort the batch. The revision bumps once if anything was
// added.
func (s *Store) AddBulkTransactions(list []TransactionParams) (BulkAddResult, error) {
	var res BulkAddResult
	for _, params := range list {
		txn, err := s.addTransaction(params, model.StatusDraft)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", params.Description, err))
			continue
		}
		res.Added = append(res.Added, *txn)
	}
	if len(res.Added) > 0 {
		return res, s.bump()
	}
	return res, nil
}

// addTransaction creates and appends one transaction without bumping the
// revision. Callers bump.
func (s *Store) addTransaction(params TransactionParams, status model.TransactionStatus) (*model.Transaction, error) {
	if status != model.StatusDraft && status != model.StatusPosted {
		return nil, fmt.Errorf("transactions can only be created as draft or posted, got %q", status)
	}
	if verr := journal.Validate(params.Lines); verr != nil {
		return nil, verr
	}
	for _, line := range params.Lines {
		if !s.AccountExists(line.AccountID) {
			return nil, &NotFoundError{Kind: "account", ID: line.AccountID}
		}
	}

	now := s.now()
	date := params.TransactionDate
	if date == "" {
		date = model.FormatDate(now)
	}

	lines := make([]model.JournalEntryLine, len(params.Lines))
	for i, line := range params.Lines {
		if line.ID == "" {
			line.ID = id.New("line")
		}
		line.Debit = model.Round2(line.Debit)
		line.Credit = model.Round2(line.Credit)
		lines[i] = line
	}

	txn := model.Transaction{
		ID:                id.New("txn"),
		TransactionNumber: id.FormatTransactionNumber(len(s.transactions) + 1),
		TransactionDate:   date,
		EntryDate:         now,
		Description:       params.Description,
		Lines:             lines,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.transactions = append(s.transactions, txn)
	return &s.transactions[len(s.transactions)-1], nil
}

// Post promotes a draft transaction into the set that affects balances and
// reports.
func (s *Store) Post(txnID string) (model.Transaction, error) {
	txn, err := s.postOne(txnID)
	if err != nil {
		return model.Transaction{}, err
	}
	return *txn, s.bump()
}

// PostBulk posts each id independently; a failure on one id does not block
// the others. The revision bumps once if anything posted.
func (s *Store) PostBulk(txnIDs []string) (BulkResult, error) {
	var res BulkResult
	for _, txnID := range txnIDs {
		if _, err := s.postOne(txnID); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", txnID, err))
			continue
		}
		res.Succeeded++
	}
	if res.Succeeded > 0 {
		return res, s.bump()
	}
	return res, nil
}

func (s *Store) postOne(txnID string) (*model.Transaction, error) {
	i := s.txnIndex(txnID)
	if i < 0 {
		return nil, &NotFoundError{Kind: "transaction", ID: txnID}
	}
	txn := &s.transactions[i]
	if txn.Status != model.StatusDraft {
		return nil, &InvalidTransitionError{ID: txnID, From: txn.Status, Op: "post"}
	}
	txn.Status = model.StatusPosted
	txn.UpdatedAt = s.now()
	return txn, nil
}

// Void strikes a posted transaction from every balance and report,
// permanently. The transaction stays in the collection for audit.
func (s *Store) Void(txnID, reason string) (model.Transaction, error) {
	i := s.txnIndex(txnID)
	if i < 0 {
		return model.Transaction{}, &NotFoundError{Kind: "transaction", ID: txnID}
	}
	txn := &s.transactions[i]
	if txn.Status != model.StatusPosted {
		return model.Transaction{}, &InvalidTransitionError{ID: txnID, From: txn.Status, Op: "void"}
	}
	if strings.TrimSpace(reason) == "" {
		return model.Transaction{}, &MissingReasonError{Op: "void"}
	}

	now := s.now()
	txn.Status = model.StatusVoided
	txn.VoidedAt = &now
	txn.VoidedReason = reason
	txn.UpdatedAt = now
	return *txn, s.bump()
}

// Reverse offsets a posted transaction with a new posted transaction whose
// lines swap debit and credit per line. Both transactions stay in the
// collection, linked to each other; the links are set once and never
// retargeted. Returns the new reversal transaction.
func (s *Store) Reverse(txnID, reason string) (model.Transaction, error) {
	i := s.txnIndex(txnID)
	if i < 0 {
		return model.Transaction{}, &NotFoundError{Kind: "transaction", ID: txnID}
	}
	if s.transactions[i].Status != model.StatusPosted {
		return model.Transaction{}, &InvalidTransitionError{ID: txnID, From: s.transactions[i].Status, Op: "reverse"}
	}
	if strings.TrimSpace(reason) == "" {
		return model.Transaction{}, &MissingReasonError{Op: "reverse"}
	}

	now := s.now()
	orig := &s.transactions[i]

	lines := make([]model.JournalEntryLine, len(orig.Lines))
	for j, line := range orig.Lines {
		lines[j] = model.JournalEntryLine{
			ID:          id.New("line"),
			AccountID:   line.AccountID,
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: "Reversal: " + line.Description,
		}
	}

	rev := model.Transaction{
		ID:                    id.New("txn"),
		TransactionNumber:     id.FormatTransactionNumber(len(s.transactions) + 1),
		TransactionDate:       model.FormatDate(now), // dated at the reversal moment
		EntryDate:             now,
		Description:           fmt.Sprintf("Reversal of %s: %s", orig.TransactionNumber, reason),
		Lines:                 lines,
		Status:                model.StatusPosted,
		ReversesTransactionID: orig.ID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	orig.Status = model.StatusReversed
	orig.ReversedByTransactionID = rev.ID
	orig.UpdatedAt = now

	s.transactions = append(s.transactions, rev)
	return rev, s.bump()
}

// Transaction returns a transaction by id.
func (s *Store) Transaction(txnID string) (model.Transaction, bool) {
	i := s.txnIndex(txnID)
	if i < 0 {
		return model.Transaction{}, false
	}
	return s.transactions[i], true
}

// TransactionByNumber returns a transaction by its display reference.
func (s *Store) TransactionByNumber(number string) (model.Transaction, bool) {
	for _, txn := range s.transactions {
		if txn.TransactionNumber == number {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// Transactions returns a copy of all transactions in insertion order.
func (s *Store) Transactions() []model.Transaction {
	return slices.Clone(s.transactions)
}

func (s *Store) txnIndex(txnID string) int {
	for i, txn := range s.transactions {
		if txn.ID == txnID {
			return i
		}
	}
	return -1
}
