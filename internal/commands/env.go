package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/config"
	"github.com/crania-dev/crania/internal/id"
	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/model"
	"github.com/crania-dev/crania/internal/snapshot"
)

// session bundles the loaded config, the snapshot store, and the ledger for
// one command invocation. Every mutation is persisted by the ledger's save
// hook; commands just act and close.
type session struct {
	cfg    *config.Config
	store  *snapshot.SQLiteStore
	ledger *ledger.Store
}

// openSession loads crania.yaml from the --dir flag's directory, opens the
// snapshot database, and materializes the ledger (seeding defaults on first
// run).
func openSession(cmd *cobra.Command) (*session, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, "crania.yaml"))
	if err != nil {
		return nil, err
	}

	dataPath := cfg.Data.Path
	if !filepath.IsAbs(dataPath) {
		dataPath = filepath.Join(dir, dataPath)
	}

	store, err := snapshot.OpenSQLite(dataPath)
	if err != nil {
		return nil, err
	}

	snap, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}

	led := ledger.New(snap, ledger.WithSaveFunc(store.Save))
	if snap == nil {
		// First run: persist the seeded defaults.
		if err := store.Save(led.Snapshot()); err != nil {
			store.Close()
			return nil, fmt.Errorf("saving initial snapshot: %w", err)
		}
	}

	return &session{cfg: cfg, store: store, ledger: led}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// findTransaction resolves a CLI argument as a transaction number first,
// then as a raw id. Short-padded numbers like "TXN-42" normalize to the
// canonical zero-padded form.
func (s *session) findTransaction(ref string) (model.Transaction, error) {
	if txn, ok := s.ledger.TransactionByNumber(ref); ok {
		return txn, nil
	}
	if n, err := id.ParseTransactionNumber(ref); err == nil {
		if txn, ok := s.ledger.TransactionByNumber(id.FormatTransactionNumber(n)); ok {
			return txn, nil
		}
	}
	if txn, ok := s.ledger.Transaction(ref); ok {
		return txn, nil
	}
	return model.Transaction{}, fmt.Errorf("transaction %q not found", ref)
}

// findAccount resolves a CLI argument as an account code first, then as an id.
func (s *session) findAccount(ref string) (model.Account, error) {
	if acct, ok := s.ledger.AccountByCode(ref); ok {
		return acct, nil
	}
	if acct, ok := s.ledger.Account(ref); ok {
		return acct, nil
	}
	return model.Account{}, fmt.Errorf("account %q not found", ref)
}
