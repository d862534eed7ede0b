package models

import "github.com/shopspring/decimal"

// Expense represents a payment made by one participant on behalf of others.
// The amount is split equally among Participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// LedgerID is the ledger this expense belongs to.
	LedgerID string

	// Description is free text (e.g., "Groceries", "Taxi to airport").
	Description string

	// Amount is the positive amount the payer fronted.
	Amount decimal.Decimal

	// PayerID is the participant who paid.
	PayerID string

	// Participants is the list of participant IDs sharing the cost.
	// It is captured when the expense is created and never follows later
	// changes to the ledger, except that removed participants are purged.
	Participants []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	// Informational only; it plays no part in balance calculations.
	CreatedAt int64
}
