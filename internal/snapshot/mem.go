package snapshot

import (
	"encoding/json"
	"fmt"
)

// MemStore holds a snapshot in memory. For tests.
type MemStore struct {
	data  []byte
	Saves int
}

// Load returns the last saved snapshot, or (nil, nil) when nothing was saved.
func (m *MemStore) Load() (*Snapshot, error) {
	if m.data == nil {
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(m.data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return &snap, nil
}

// Save serializes the snapshot, detaching it from the caller's state.
func (m *MemStore) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	m.data = data
	m.Saves++
	return nil
}
