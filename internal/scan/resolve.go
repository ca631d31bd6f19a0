package scan

import (
	"fmt"
	"strings"

	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/model"
)

// Resolver maps scanner account strings onto chart-of-accounts ids.
type Resolver struct {
	accounts []model.Account
}

// NewResolver builds a resolver over the given accounts.
func NewResolver(accounts []model.Account) *Resolver {
	return &Resolver{accounts: accounts}
}

// Resolve matches a scanned account string to an account id. Precedence:
// exact case-insensitive name match, then substring match on the name, then
// exact code match. First match wins; no match leaves the line unresolved.
func (r *Resolver) Resolve(name string) (string, bool) {
	query := strings.TrimSpace(name)
	if query == "" {
		return "", false
	}
	lower := strings.ToLower(query)

	for _, acct := range r.accounts {
		if strings.ToLower(acct.Name) == lower {
			return acct.ID, true
		}
	}
	for _, acct := range r.accounts {
		if strings.Contains(strings.ToLower(acct.Name), lower) {
			return acct.ID, true
		}
	}
	for _, acct := range r.accounts {
		if acct.Code == query {
			return acct.ID, true
		}
	}
	return "", false
}

// ToParams turns a candidate into transaction params ready for the store.
// Any unresolved account blocks the whole candidate; the store's own
// validation still runs on acceptance.
func (r *Resolver) ToParams(c Candidate, date, description string) (ledger.TransactionParams, error) {
	lines := make([]model.JournalEntryLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		accountID, ok := r.Resolve(line.Account)
		if !ok {
			return ledger.TransactionParams{}, fmt.Errorf("unresolved account %q", line.Account)
		}
		lines = append(lines, model.JournalEntryLine{
			AccountID:   accountID,
			Debit:       model.Round2(line.Debit),
			Credit:      model.Round2(line.Credit),
			Description: line.Account,
		})
	}
	return ledger.TransactionParams{
		TransactionDate: date,
		Description:     description,
		Lines:           lines,
	}, nil
}
