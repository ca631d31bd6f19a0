package ledger

import (
	"slices"

	"github.com/crania-dev/crania/internal/id"
	"github.com/crania-dev/crania/internal/model"
)

// AccountParams holds the caller-editable fields of an account.
type AccountParams struct {
	Code        string
	Name        string
	Type        model.AccountType
	Subtype     model.AccountSubtype
	Description string
	ParentID    string
}

// AddAccount creates an active account and returns it.
func (s *Store) AddAccount(params AccountParams) (model.Account, error) {
	now := s.now()
	acct := model.Account{
		ID:          id.New("acct"),
		Code:        params.Code,
		Name:        params.Name,
		Type:        params.Type,
		Subtype:     params.Subtype,
		Description: params.Description,
		ParentID:    params.ParentID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.accounts = append(s.accounts, acct)
	return acct, s.bump()
}

// UpdateAccount overwrites the caller-editable fields of an account.
func (s *Store) UpdateAccount(accountID string, params AccountParams) (model.Account, error) {
	i := s.accountIndex(accountID)
	if i < 0 {
		return model.Account{}, &NotFoundError{Kind: "account", ID: accountID}
	}

	acct := &s.accounts[i]
	acct.Code = params.Code
	acct.Name = params.Name
	acct.Type = params.Type
	acct.Subtype = params.Subtype
	acct.Description = params.Description
	acct.ParentID = params.ParentID
	acct.UpdatedAt = s.now()
	return *acct, s.bump()
}

// SetAccountActive toggles whether an account appears in transaction entry.
// A no-op toggle does not bump the revision.
func (s *Store) SetAccountActive(accountID string, active bool) (model.Account, error) {
	i := s.accountIndex(accountID)
	if i < 0 {
		return model.Account{}, &NotFoundError{Kind: "account", ID: accountID}
	}

	acct := &s.accounts[i]
	if acct.IsActive == active {
		return *acct, nil
	}
	acct.IsActive = active
	acct.UpdatedAt = s.now()
	return *acct, s.bump()
}

// DeleteAccount removes an account no transaction references. Once any
// journal line (of any status) points at it, deactivation is the only path.
func (s *Store) DeleteAccount(accountID string) error {
	i := s.accountIndex(accountID)
	if i < 0 {
		return &NotFoundError{Kind: "account", ID: accountID}
	}
	for _, txn := range s.transactions {
		if txn.Touches(accountID) {
			return &AccountInUseError{ID: accountID}
		}
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	return s.bump()
}

// Account returns an account by id.
func (s *Store) Account(accountID string) (model.Account, bool) {
	i := s.accountIndex(accountID)
	if i < 0 {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// AccountByCode returns the first account with the given code.
func (s *Store) AccountByCode(code string) (model.Account, bool) {
	for _, acct := range s.accounts {
		if acct.Code == code {
			return acct, true
		}
	}
	return model.Account{}, false
}

// AccountExists reports whether an account id exists.
func (s *Store) AccountExists(accountID string) bool {
	return s.accountIndex(accountID) >= 0
}

// Accounts returns a copy of all accounts.
func (s *Store) Accounts() []model.Account {
	return slices.Clone(s.accounts)
}

// ActiveAccounts returns the accounts available for transaction entry.
func (s *Store) ActiveAccounts() []model.Account {
	var result []model.Account
	for _, acct := range s.accounts {
		if acct.IsActive {
			result = append(result, acct)
		}
	}
	return result
}

// AccountsByType returns all accounts of the given type.
func (s *Store) AccountsByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, acct := range s.accounts {
		if acct.Type == accountType {
			result = append(result, acct)
		}
	}
	return result
}

func (s *Store) accountIndex(accountID string) int {
	for i, acct := range s.accounts {
		if acct.ID == accountID {
			return i
		}
	}
	return -1
}
