package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidExpense is the sentinel every InvalidExpenseError unwraps to.
var ErrInvalidExpense = errors.New("invalid expense")

// InvalidExpenseError reports an expense that cannot take part in a balance
// calculation: a non-positive amount, an empty or repeated participant list,
// or an id the caller's store cannot resolve.
type InvalidExpenseError struct {
	ExpenseID string
	Reason    string
}

func (e *InvalidExpenseError) Error() string {
	if e.ExpenseID == "" {
		return fmt.Sprintf("invalid expense: %s", e.Reason)
	}
	return fmt.Sprintf("invalid expense %s: %s", e.ExpenseID, e.Reason)
}

func (e *InvalidExpenseError) Unwrap() error { return ErrInvalidExpense }

// PrecisionWarning is a non-fatal diagnostic: the balances of a ledger do not
// add up to zero within Epsilon. It points at inconsistent input upstream.
type PrecisionWarning struct {
	Total decimal.Decimal
}

func (w *PrecisionWarning) Error() string {
	return fmt.Sprintf("balances sum to %s instead of zero", w.Total.String())
}
