package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/model"
)

// Code identifies a class of validation failure.
type Code string

const (
	CodeTooFewLines Code = "too_few_lines"
	CodeUnbalanced  Code = "unbalanced"
	CodeZeroAmount  Code = "zero_amount"
	CodeBothSides   Code = "both_sides"
	CodeEmptyLine   Code = "empty_line"
)

// ValidationError describes why a candidate line set is not a legal
// double-entry transaction.
type ValidationError struct {
	Code    Code
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks that lines form a legal double-entry transaction. Checks
// run fail-fast in a fixed order: line count, balanced totals, nonzero total,
// then per-line side checks. Returns nil when the lines are valid.
func Validate(lines []model.JournalEntryLine) *ValidationError {
	if len(lines) < 2 {
		return &ValidationError{
			Code:    CodeTooFewLines,
			Message: "a transaction requires at least two journal lines",
		}
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, line := range lines {
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}
	totalDebits = model.Round2(totalDebits)
	totalCredits = model.Round2(totalCredits)

	if !totalDebits.Equal(totalCredits) {
		return &ValidationError{
			Code: CodeUnbalanced,
			Message: fmt.Sprintf("debits (%s) do not equal credits (%s)",
				model.FormatCurrency(totalDebits), model.FormatCurrency(totalCredits)),
		}
	}

	if totalDebits.IsZero() {
		return &ValidationError{
			Code:    CodeZeroAmount,
			Message: "transaction total must be nonzero",
		}
	}

	// The both-sides check runs over every line before any empty-line report.
	for i, line := range lines {
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return &ValidationError{
				Code:    CodeBothSides,
				Message: fmt.Sprintf("line %d carries both a debit and a credit", i+1),
			}
		}
	}
	for i, line := range lines {
		if !line.Debit.IsPositive() && !line.Credit.IsPositive() {
			return &ValidationError{
				Code:    CodeEmptyLine,
				Message: fmt.Sprintf("line %d carries neither a debit nor a credit", i+1),
			}
		}
	}

	return nil
}
