package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crania-dev/crania/internal/model"
)

func testSnapshot() *Snapshot {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	return &Snapshot{
		Accounts: []model.Account{
			{ID: "cash", Code: "1000", Name: "Cash", Type: model.AccountTypeAsset, IsActive: true, CreatedAt: now, UpdatedAt: now},
		},
		Transactions: []model.Transaction{
			{
				ID:                "txn1",
				TransactionNumber: "TXN-000001",
				TransactionDate:   "2024-01-05",
				EntryDate:         now,
				Status:            model.StatusPosted,
				Lines: []model.JournalEntryLine{
					{ID: "l1", AccountID: "cash", Debit: decimal.NewFromInt(100)},
				},
			},
		},
		TaxRates: []model.TaxRate{
			{ID: "tax1", Name: "Sales Tax", Rate: decimal.RequireFromString("7.25"), IsActive: true, CreatedAt: now},
		},
		DataVersion: 7,
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testSnapshot()))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, uint64(7), got.DataVersion)
	require.Len(t, got.Accounts, 1)
	assert.Equal(t, "Cash", got.Accounts[0].Name)
	require.Len(t, got.Transactions, 1)
	assert.True(t, got.Transactions[0].Lines[0].Debit.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.TaxRates, 1)
	assert.True(t, got.TaxRates[0].Rate.Equal(decimal.RequireFromString("7.25")))
}

func TestSQLiteLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "fresh database means seed defaults")
}

func TestSQLiteSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	first := testSnapshot()
	require.NoError(t, store.Save(first))

	second := testSnapshot()
	second.DataVersion = 8
	require.NoError(t, store.Save(second))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(8), got.DataVersion)
}

func TestSQLiteCorruptBlobSeedsDefaults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, snapshotKey, "{not json")
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "unparsable blob degrades to a fresh start")
}

func TestSQLiteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "ledger.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Save(testSnapshot()))
}

func TestMemStoreRoundTrip(t *testing.T) {
	mem := &MemStore{}

	got, err := mem.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, mem.Save(testSnapshot()))
	assert.Equal(t, 1, mem.Saves)

	got, err = mem.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(7), got.DataVersion)
}
