package models

// Participant represents one person in a ledger.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	// IDs are never reused, even after the participant is removed.
	ID string

	// LedgerID is the ledger this participant belongs to.
	LedgerID string

	// Name is the display name, unique within the ledger regardless of case.
	Name string

	// CreatedAt is the Unix timestamp when the participant was added.
	CreatedAt int64
}
