// Package ledger owns the authoritative in-memory collections (accounts,
// transactions, tax rates) and every mutation over them. All access goes
// through the Store; nothing outside this package shares the collections by
// reference.
//
// The Store assumes a single logical caller and carries no locking. Exposing
// it across a network boundary requires one mutex around every mutating call,
// since no invariant here survives interleaved execution.
package ledger

import (
	"slices"
	"time"

	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/snapshot"
)

// SaveFunc persists a snapshot after a successful mutation. Injected rather
// than ambient so callers decide where state goes.
type SaveFunc func(*snapshot.Snapshot) error

// Store is the ledger engine's state owner.
type Store struct {
	accounts     []model.Account
	transactions []model.Transaction
	taxRates     []model.TaxRate
	revision     uint64
	save         SaveFunc
	nowFn        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSaveFunc installs a persistence hook invoked after each successful
// mutation. A save failure is returned to the caller, but the in-memory
// mutation stands.
func WithSaveFunc(fn SaveFunc) Option {
	return func(s *Store) { s.save = fn }
}

// WithClock overrides the time source. For tests.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.nowFn = fn }
}

// New builds a Store from a loaded snapshot. A nil snapshot seeds the default
// chart of accounts and tax rates.
func New(snap *snapshot.Snapshot, opts ...Option) *Store {
	s := &Store{nowFn: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if snap == nil {
		now := s.nowFn()
		s.accounts = DefaultChart(now)
		s.taxRates = DefaultTaxRates(now)
		return s
	}

	s.accounts = slices.Clone(snap.Accounts)
	s.transactions = slices.Clone(snap.Transactions)
	s.taxRates = slices.Clone(snap.TaxRates)
	s.revision = snap.DataVersion
	return s
}

// Revision returns the store-wide change counter. It increments exactly once
// per mutating call that produced an observable change, so consumers can
// detect staleness without deep comparison.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Snapshot returns a detached copy of the full state for persistence.
func (s *Store) Snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Accounts:     slices.Clone(s.accounts),
		Transactions: slices.Clone(s.transactions),
		TaxRates:     slices.Clone(s.taxRates),
		DataVersion:  s.revision,
	}
}

// bump records one observable change and runs the save hook.
func (s *Store) bump() error {
	s.revision++
	if s.save == nil {
		return nil
	}
	return s.save(s.Snapshot())
}

func (s *Store) now() time.Time {
	return s.nowFn()
}
