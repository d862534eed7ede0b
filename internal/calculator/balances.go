package calculator

import (
	"github.com/shopspring/decimal"
)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID           string
	Amount       decimal.Decimal
	PayerID      string
	Participants []string // Snapshot of the sharers taken when the expense was created
}

// Balance represents the balance information for one participant.
type Balance struct {
	ParticipantID string
	Paid          decimal.Decimal // Total amount fronted across all expenses
	Share         decimal.Decimal // Total of this participant's equal shares
	Net           decimal.Decimal // Positive = owed money, Negative = owes money
}

// Balances is an ordered list of participant balances.
// The order is the order participants were handed to ComputeBalances, followed
// by any unknown ids in the order the expenses referenced them. Settlement
// matching follows this order, so it must never be rebuilt from a map.
type Balances []Balance

// Get returns the net balance of a participant.
func (b Balances) Get(participantID string) (decimal.Decimal, bool) {
	for _, bal := range b {
		if bal.ParticipantID == participantID {
			return bal.Net, true
		}
	}
	return decimal.Zero, false
}

// Total returns the sum of all net balances. It is zero (within Epsilon) for valid input.
func (b Balances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bal := range b {
		total = total.Add(bal.Net)
	}
	return total
}

// Map returns the net balances keyed by participant id.
func (b Balances) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b))
	for _, bal := range b {
		m[bal.ParticipantID] = bal.Net
	}
	return m
}

// ComputeBalances reduces a set of expenses into one net balance per participant.
//
// Algorithm:
//   - Every participant starts at zero, including those with no activity
//   - For each expense: payer is credited the full amount, each sharer
//     (the payer too, if listed) is debited amount / len(sharers)
//   - net_balance = total_paid - total_share
//
// An expense with a non-positive amount, no sharers or a repeated sharer fails
// the whole call with an *InvalidExpenseError. Ids missing from participantIDs
// still get their credit or debit; rejecting them is the caller's job (see ValidateExpense).
func ComputeBalances(participantIDs []string, expenses []ExpenseForBalance) (Balances, error) {
	balances := make(Balances, 0, len(participantIDs))
	index := make(map[string]int, len(participantIDs))

	entry := func(id string) *Balance {
		if i, ok := index[id]; ok {
			return &balances[i]
		}
		index[id] = len(balances)
		balances = append(balances, Balance{ParticipantID: id})
		return &balances[len(balances)-1]
	}

	for _, id := range participantIDs {
		entry(id)
	}

	for _, expense := range expenses {
		if err := checkExpense(expense); err != nil {
			return nil, err
		}

		share, err := SplitEqually(expense.Amount, len(expense.Participants))
		if err != nil {
			return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: err.Error()}
		}

		payer := entry(expense.PayerID)
		payer.Paid = payer.Paid.Add(expense.Amount)

		for _, participant := range expense.Participants {
			sharer := entry(participant)
			sharer.Share = sharer.Share.Add(share)
		}
	}

	for i := range balances {
		balances[i].Net = balances[i].Paid.Sub(balances[i].Share)
	}

	return balances, nil
}

// CheckZeroSum returns a warning when the balances do not cancel out within Epsilon.
func CheckZeroSum(b Balances) *PrecisionWarning {
	total := b.Total()
	if total.Abs().GreaterThan(Epsilon) {
		return &PrecisionWarning{Total: total}
	}
	return nil
}

// checkExpense holds the structural checks ComputeBalances cannot do without.
func checkExpense(e ExpenseForBalance) error {
	if !e.Amount.IsPositive() {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "amount must be positive"}
	}
	if len(e.Participants) == 0 {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "must have at least one participant"}
	}
	seen := make(map[string]bool, len(e.Participants))
	for _, p := range e.Participants {
		if seen[p] {
			return &InvalidExpenseError{ExpenseID: e.ID, Reason: "participant " + p + " listed twice"}
		}
		seen[p] = true
	}
	return nil
}

// ValidateExpense checks an expense against the participants the caller knows about.
// It is meant for the input boundary, before an expense is stored.
func ValidateExpense(e ExpenseForBalance, known []string) error {
	if err := checkExpense(e); err != nil {
		return err
	}
	members := make(map[string]bool, len(known))
	for _, id := range known {
		members[id] = true
	}
	if e.PayerID == "" {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "payer is required"}
	}
	if !members[e.PayerID] {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "unknown payer " + e.PayerID}
	}
	for _, p := range e.Participants {
		if !members[p] {
			return &InvalidExpenseError{ExpenseID: e.ID, Reason: "unknown participant " + p}
		}
	}
	return nil
}
