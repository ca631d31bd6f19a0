package model

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DateFormat is the ISO date layout used for transaction dates. Lexicographic
// comparison of formatted dates is equivalent to chronological order.
const DateFormat = "2006-01-02"

// Round2 rounds to the cent, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatCurrency renders an amount as a display string like "$1,234.56".
func FormatCurrency(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// FormatDate renders a timestamp as an ISO YYYY-MM-DD date.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
