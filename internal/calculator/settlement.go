package calculator

import "github.com/shopspring/decimal"

// Transaction represents a proposed payment from one participant to another.
type Transaction struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// Settlement bundles everything derived from one ledger snapshot.
type Settlement struct {
	Balances     Balances
	Transactions []Transaction
	TotalSpent   decimal.Decimal
	Warning      *PrecisionWarning // nil when balances cancel out
}

type position struct {
	id        string
	remaining decimal.Decimal
}

// OptimizeSettlement proposes transfers that bring every balance back to zero.
//
// Creditors (net > Epsilon) and debtors (net < -Epsilon) are matched greedily
// with two cursors, in the order they appear in b. Each step moves
// min(creditor, debtor) from the debtor to the creditor and advances whichever
// side is settled, possibly both. The result is small but not guaranteed to be
// the minimum number of transfers.
//
// If b does not sum to zero the loop still ends when one side runs out, leaving
// the other side partly unmatched.
func OptimizeSettlement(b Balances) []Transaction {
	var creditors, debtors []position
	for _, bal := range b {
		switch {
		case bal.Net.GreaterThan(Epsilon):
			creditors = append(creditors, position{id: bal.ParticipantID, remaining: bal.Net})
		case bal.Net.LessThan(Epsilon.Neg()):
			debtors = append(debtors, position{id: bal.ParticipantID, remaining: bal.Net.Neg()})
		}
	}

	var transactions []Transaction
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := decimal.Min(creditor.remaining, debtor.remaining)

		if amount.GreaterThan(Epsilon) && creditor.id != debtor.id {
			transactions = append(transactions, Transaction{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
		}

		creditor.remaining = creditor.remaining.Sub(amount)
		debtor.remaining = debtor.remaining.Sub(amount)

		if creditor.remaining.LessThanOrEqual(Epsilon) {
			i++
		}
		if debtor.remaining.LessThanOrEqual(Epsilon) {
			j++
		}
	}

	return transactions
}

// Settle computes balances and the proposed transfers for one snapshot of
// participants and expenses.
func Settle(participantIDs []string, expenses []ExpenseForBalance) (*Settlement, error) {
	balances, err := ComputeBalances(participantIDs, expenses)
	if err != nil {
		return nil, err
	}
	return &Settlement{
		Balances:     balances,
		Transactions: OptimizeSettlement(balances),
		TotalSpent:   TotalSpent(expenses),
		Warning:      CheckZeroSum(balances),
	}, nil
}
