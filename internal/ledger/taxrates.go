package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/id"
	"github.com/crania-dev/crania/internal/model"
)

// TaxRateParams holds the caller-editable fields of a tax rate. Tax rates
// are configuration for the entry form; no engine computation reads them.
type TaxRateParams struct {
	Name        string
	Rate        decimal.Decimal
	Description string
	IsActive    bool
}

// AddTaxRate creates a tax rate row.
func (s *Store) AddTaxRate(params TaxRateParams) (model.TaxRate, error) {
	rate := model.TaxRate{
		ID:          id.New("tax"),
		Name:        params.Name,
		Rate:        params.Rate,
		Description: params.Description,
		IsActive:    params.IsActive,
		CreatedAt:   s.now(),
	}
	s.taxRates = append(s.taxRates, rate)
	return rate, s.bump()
}

// UpdateTaxRate overwrites a tax rate's editable fields.
func (s *Store) UpdateTaxRate(rateID string, params TaxRateParams) (model.TaxRate, error) {
	i := s.taxRateIndex(rateID)
	if i < 0 {
		return model.TaxRate{}, &NotFoundError{Kind: "tax rate", ID: rateID}
	}
	rate := &s.taxRates[i]
	rate.Name = params.Name
	rate.Rate = params.Rate
	rate.Description = params.Description
	rate.IsActive = params.IsActive
	return *rate, s.bump()
}

// DeleteTaxRate removes a tax rate.
func (s *Store) DeleteTaxRate(rateID string) error {
	i := s.taxRateIndex(rateID)
	if i < 0 {
		return &NotFoundError{Kind: "tax rate", ID: rateID}
	}
	s.taxRates = slices.Delete(s.taxRates, i, i+1)
	return s.bump()
}

// TaxRates returns a copy of all tax rates.
func (s *Store) TaxRates() []model.TaxRate {
	return slices.Clone(s.taxRates)
}

func (s *Store) taxRateIndex(rateID string) int {
	for i, rate := range s.taxRates {
		if rate.ID == rateID {
			return i
		}
	}
	return -1
}
