// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/settleup/internal/models"
)

// Store defines the interface for ledger, participant and expense storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger or service layers.
//
// Errors wrap apperrors.ErrNotFound and apperrors.ErrDuplicate where they apply.
type Store interface {
	// CreateLedger persists a new ledger. ID and CreatedAt are populated by the store.
	CreateLedger(ctx context.Context, ledger *models.Ledger) error

	// GetLedger retrieves a ledger by its ID.
	GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error)

	// CreateParticipant adds a participant to a ledger.
	// Returns ErrDuplicate if the name is already taken (case-insensitive).
	CreateParticipant(ctx context.Context, participant *models.Participant) error

	// ListParticipants returns the participants of a ledger in the order they were added.
	ListParticipants(ctx context.Context, ledgerID string) ([]*models.Participant, error)

	// DeleteParticipant removes a participant together with every expense they paid for,
	// and purges them from the participant lists of the remaining expenses.
	// Expenses left without participants are removed as well.
	// Returns the number of expenses removed.
	DeleteParticipant(ctx context.Context, ledgerID, participantID string) (int, error)

	// CreateExpense records a new expense with its participant snapshot.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the expenses of a ledger in the order they were recorded.
	ListExpenses(ctx context.Context, ledgerID string) ([]*models.Expense, error)

	// DeleteExpense removes a single expense.
	DeleteExpense(ctx context.Context, ledgerID, expenseID string) error

	// ClearLedger removes every participant and expense of a ledger, keeping the ledger.
	ClearLedger(ctx context.Context, ledgerID string) error

	// Close releases any resources held by the store.
	Close() error
}
