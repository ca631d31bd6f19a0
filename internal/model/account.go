package model

import "time"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Side is the normal balance side of an account type.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalSide returns the side on which balances of this account type grow:
// debit for asset and expense accounts, credit for liability, equity and
// revenue accounts. The mapping is fixed and never stored per account.
func (t AccountType) NormalSide() Side {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return SideCredit
	}
	// Zero value falls through to debit.
	return SideDebit
}

// AccountSubtype refines an AccountType. Informational only; no computation
// depends on it.
type AccountSubtype string

const (
	SubtypeCurrentAsset      AccountSubtype = "current_asset"
	SubtypeFixedAsset        AccountSubtype = "fixed_asset"
	SubtypeOtherAsset        AccountSubtype = "other_asset"
	SubtypeCurrentLiability  AccountSubtype = "current_liability"
	SubtypeLongTermLiability AccountSubtype = "long_term_liability"
	SubtypeOwnerEquity       AccountSubtype = "owner_equity"
	SubtypeRetainedEarnings  AccountSubtype = "retained_earnings"
	SubtypeOperatingRevenue  AccountSubtype = "operating_revenue"
	SubtypeOtherRevenue      AccountSubtype = "other_revenue"
	SubtypeCostOfGoodsSold   AccountSubtype = "cost_of_goods_sold"
	SubtypeOperatingExpense  AccountSubtype = "operating_expense"
	SubtypeOtherExpense      AccountSubtype = "other_expense"
)

// SubtypesFor returns the subtypes that belong to an account type.
func SubtypesFor(t AccountType) []AccountSubtype {
	switch t {
	case AccountTypeAsset:
		return []AccountSubtype{SubtypeCurrentAsset, SubtypeFixedAsset, SubtypeOtherAsset}
	case AccountTypeLiability:
		return []AccountSubtype{SubtypeCurrentLiability, SubtypeLongTermLiability}
	case AccountTypeEquity:
		return []AccountSubtype{SubtypeOwnerEquity, SubtypeRetainedEarnings}
	case AccountTypeRevenue:
		return []AccountSubtype{SubtypeOperatingRevenue, SubtypeOtherRevenue}
	case AccountTypeExpense:
		return []AccountSubtype{SubtypeCostOfGoodsSold, SubtypeOperatingExpense, SubtypeOtherExpense}
	}
	return nil
}

// Account represents a row in the chart of accounts.
type Account struct {
	ID          string         `json:"id"`
	Code        string         `json:"code"` // sortable, unique by convention
	Name        string         `json:"name"`
	Type        AccountType    `json:"type"`
	Subtype     AccountSubtype `json:"subtype"`
	Description string         `json:"description"`
	IsActive    bool           `json:"isActive"` // gates transaction entry, not a delete
	ParentID    string         `json:"parentId"` // reserved for hierarchy, unused by computations
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
