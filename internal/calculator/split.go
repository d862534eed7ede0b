package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance below which a balance or a transfer is treated as zero.
// It absorbs the drift left by splits that do not divide evenly.
var Epsilon = decimal.New(1, -2)

// SplitEqually returns the share each of n people owes for amount.
// The division is not rounded; callers compare results against Epsilon.
func SplitEqually(amount decimal.Decimal, n int) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, fmt.Errorf("must have at least one participant")
	}
	return amount.Div(decimal.NewFromInt(int64(n))), nil
}

// TotalSpent sums the amounts of all expenses.
func TotalSpent(expenses []ExpenseForBalance) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
