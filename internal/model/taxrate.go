package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is configuration consumed by the transaction entry form. No
// computation in the engine reads it.
type TaxRate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"` // percentage, >= 0
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
