package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// New returns an opaque identifier like "txn_m1a9k3f8_1f3c". The millisecond
// timestamp keeps ids roughly sortable; the random suffix makes collisions
// within one millisecond a non-issue for a single-user store.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	buf := make([]byte, 2)
	_, _ = rand.Read(buf)
	return prefix + "_" + ts + "_" + hex.EncodeToString(buf)
}

// FormatTransactionNumber returns a display reference like "TXN-000001".
func FormatTransactionNumber(n int) string {
	return fmt.Sprintf("TXN-%06d", n)
}

// ParseTransactionNumber parses "TXN-000001" into 1.
func ParseTransactionNumber(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "TXN-")
	if !ok {
		return 0, fmt.Errorf("invalid transaction number format: %q", s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction number %q: %w", s, err)
	}
	return n, nil
}
