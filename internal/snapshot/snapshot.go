// Package snapshot persists the full ledger state as a single opaque blob.
// The engine never parses it piecemeal: load the whole record, save the
// whole record.
package snapshot

import "github.com/crania-dev/crania/internal/model"

// Snapshot is the persisted state record.
type Snapshot struct {
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
	TaxRates     []model.TaxRate     `json:"taxRates"`
	DataVersion  uint64              `json:"dataVersion"`
}

// Store loads and saves snapshots. Load returns (nil, nil) when no usable
// snapshot exists, which tells the caller to seed defaults.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}
