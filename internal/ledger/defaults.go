package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/id"
	"github.com/crania-dev/crania/internal/model"
)

// DefaultChart returns the seed chart of accounts for a fresh ledger:
// 1000s assets, 2000s liabilities, 3000s equity, 4000s revenue,
// 5000-7000s expenses.
func DefaultChart(now time.Time) []model.Account {
	seeds := []struct {
		code    string
		name    string
		typ     model.AccountType
		subtype model.AccountSubtype
		desc    string
	}{
		{"1000", "Cash", model.AccountTypeAsset, model.SubtypeCurrentAsset, "Cash on hand and in bank"},
		{"1100", "Accounts Receivable", model.AccountTypeAsset, model.SubtypeCurrentAsset, "Amounts owed by customers"},
		{"1200", "Inventory", model.AccountTypeAsset, model.SubtypeCurrentAsset, "Goods held for sale"},
		{"1500", "Equipment", model.AccountTypeAsset, model.SubtypeFixedAsset, "Machinery and equipment"},
		{"2000", "Accounts Payable", model.AccountTypeLiability, model.SubtypeCurrentLiability, "Amounts owed to vendors"},
		{"2100", "Credit Card", model.AccountTypeLiability, model.SubtypeCurrentLiability, "Business credit card"},
		{"2500", "Notes Payable", model.AccountTypeLiability, model.SubtypeLongTermLiability, "Long-term loans"},
		{"3000", "Owner's Equity", model.AccountTypeEquity, model.SubtypeOwnerEquity, "Owner capital contributions"},
		{"3900", "Retained Earnings", model.AccountTypeEquity, model.SubtypeRetainedEarnings, "Accumulated earnings"},
		{"4000", "Sales Revenue", model.AccountTypeRevenue, model.SubtypeOperatingRevenue, "Product sales"},
		{"4100", "Service Revenue", model.AccountTypeRevenue, model.SubtypeOperatingRevenue, "Services rendered"},
		{"4900", "Other Income", model.AccountTypeRevenue, model.SubtypeOtherRevenue, "Interest and miscellaneous income"},
		{"5000", "Cost of Goods Sold", model.AccountTypeExpense, model.SubtypeCostOfGoodsSold, "Direct cost of goods sold"},
		{"6000", "Rent Expense", model.AccountTypeExpense, model.SubtypeOperatingExpense, "Office and facility rent"},
		{"6100", "Utilities Expense", model.AccountTypeExpense, model.SubtypeOperatingExpense, "Power, water, internet"},
		{"6200", "Office Supplies", model.AccountTypeExpense, model.SubtypeOperatingExpense, "Supplies and small equipment"},
		{"6300", "Advertising & Marketing", model.AccountTypeExpense, model.SubtypeOperatingExpense, "Advertising costs"},
		{"7000", "Miscellaneous Expense", model.AccountTypeExpense, model.SubtypeOtherExpense, "Everything else"},
		{"7900", "Uncategorized Expense", model.AccountTypeExpense, model.SubtypeOtherExpense, "Imported lines awaiting categorization"},
	}

	accounts := make([]model.Account, 0, len(seeds))
	for _, seed := range seeds {
		accounts = append(accounts, model.Account{
			ID:          id.New("acct"),
			Code:        seed.code,
			Name:        seed.name,
			Type:        seed.typ,
			Subtype:     seed.subtype,
			Description: seed.desc,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return accounts
}

// DefaultTaxRates returns the four seed tax rate rows.
func DefaultTaxRates(now time.Time) []model.TaxRate {
	seeds := []struct {
		name string
		rate string
		desc string
	}{
		{"No Tax", "0", "Exempt and untaxed items"},
		{"Sales Tax", "7.25", "Standard sales tax"},
		{"Reduced Sales Tax", "3.0", "Reduced-rate goods"},
		{"Service Tax", "5.0", "Taxable services"},
	}

	rates := make([]model.TaxRate, 0, len(seeds))
	for _, seed := range seeds {
		rate, _ := decimal.NewFromString(seed.rate)
		rates = append(rates, model.TaxRate{
			ID:          id.New("tax"),
			Name:        seed.name,
			Rate:        rate,
			Description: seed.desc,
			IsActive:    true,
			CreatedAt:   now,
		})
	}
	return rates
}
