package ledger

import (
	"fmt"

	"github.com/crania-dev/crania/internal/model"
)

// NotFoundError reports an operation against an unknown entity id.
type NotFoundError struct {
	Kind string // "account", "transaction", "tax rate"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidTransitionError reports a lifecycle operation applied to a
// transaction in the wrong status.
type InvalidTransitionError struct {
	ID   string
	From model.TransactionStatus
	Op   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s transaction %s with status %s", e.Op, e.ID, e.From)
}

// AccountInUseError reports an attempt to delete an account that journal
// lines still reference. Deactivation is the only path once referenced.
type AccountInUseError struct {
	ID string
}

func (e *AccountInUseError) Error() string {
	return fmt.Sprintf("account %s is referenced by existing transactions", e.ID)
}

// MissingReasonError reports a void or reverse call without a reason.
type MissingReasonError struct {
	Op string
}

func (e *MissingReasonError) Error() string {
	return fmt.Sprintf("%s requires a non-empty reason", e.Op)
}
