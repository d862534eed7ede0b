package models

// Ledger represents a group of people tracking shared expenses together.
type Ledger struct {
	// ID is the unique identifier for the ledger (UUID format).
	ID string

	// Name is the display name of the ledger (e.g., "Ski trip", "Flat 4B").
	Name string

	// PassphraseHash is the bcrypt hash of the passphrase needed to join.
	// Empty for open ledgers.
	PassphraseHash string

	// CreatedAt is the Unix timestamp when the ledger was created.
	CreatedAt int64
}

// IsProtected reports whether joining the ledger requires a passphrase.
func (l *Ledger) IsProtected() bool {
	return l.PassphraseHash != ""
}
