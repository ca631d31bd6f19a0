// Package scan consumes the output of the external statement scanner: a CSV
// of candidate account/debit/credit lines. The scanner is an opaque producer;
// everything it emits still goes through ordinary validation before it can
// touch the ledger.
package scan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// UncategorizedAccount names the synthetic account used to close out an
// unbalanced tail of scanned lines.
const UncategorizedAccount = "Uncategorized"

// CandidateLine is one scanned row, not yet tied to a chart account.
type CandidateLine struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// Candidate groups lines into one prospective transaction.
type Candidate struct {
	Lines []CandidateLine
}

const (
	colAccount = 0
	colDebit   = 1
	colCredit  = 2
	colNet     = 3
)

// ParseStatement reads the scanner CSV. Expected header:
// "Account Name/ID,Total Debit (Gains),Total Credit (Losses),Net Change".
// Short rows are skipped and junk numerics degrade to zero; the scanner's
// output is best-effort table extraction, not a trusted format.
func ParseStatement(r io.Reader) ([]CandidateLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	var lines []CandidateLine
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 2 {
			continue
		}

		line := CandidateLine{Account: strings.TrimSpace(rec[colAccount])}
		if len(rec) > colNet {
			line.Debit = parseAmount(rec[colDebit])
			line.Credit = parseAmount(rec[colCredit])
		} else {
			// Two-column rows carry only a net change.
			net := parseAmount(rec[1])
			if net.IsNegative() {
				line.Credit = net.Abs()
			} else {
				line.Debit = net
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func looksLikeHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "Account Name/ID")
}

// parseAmount strips currency punctuation and falls back to zero.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.NewReplacer(",", "", "$", "").Replace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Group cuts lines into candidate transactions: lines accumulate until the
// running debit total equals the running credit total, which closes one
// candidate. An unbalanced tail at end-of-input is closed with a synthetic
// Uncategorized balancing line.
func Group(lines []CandidateLine) []Candidate {
	var out []Candidate
	var current []CandidateLine
	runningDebit := decimal.Zero
	runningCredit := decimal.Zero

	for _, line := range lines {
		current = append(current, line)
		runningDebit = runningDebit.Add(line.Debit)
		runningCredit = runningCredit.Add(line.Credit)

		if !runningDebit.IsZero() && runningDebit.Equal(runningCredit) {
			out = append(out, Candidate{Lines: current})
			current = nil
			runningDebit = decimal.Zero
			runningCredit = decimal.Zero
		}
	}

	if len(current) > 0 {
		diff := runningDebit.Sub(runningCredit)
		if !diff.IsZero() {
			balancing := CandidateLine{Account: UncategorizedAccount}
			if diff.IsPositive() {
				balancing.Credit = diff
			} else {
				balancing.Debit = diff.Abs()
			}
			current = append(current, balancing)
		}
		out = append(out, Candidate{Lines: current})
	}
	return out
}
