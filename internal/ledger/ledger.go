// Package ledger implements the participant and expense operations of a ledger
// on top of a storage.Store, and turns a stored ledger into a settlement.
//
// This is the validation boundary: everything that reaches the calculator from
// here has already been checked against the current participants.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Book performs ledger operations against a store.
type Book struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// New creates a Book. m may be nil.
func New(store storage.Store, m *metrics.Metrics) *Book {
	return &Book{store: store, metrics: m}
}

// NewExpense is the input for AddExpense. The participant list is not part of
// it: an expense is always shared by everyone in the ledger at that moment.
type NewExpense struct {
	Description string
	Amount      decimal.Decimal
	PayerID     string
}

// Report is a settlement together with the records it was computed from.
type Report struct {
	Ledger       *models.Ledger
	Participants []*models.Participant
	Expenses     []*models.Expense
	*calculator.Settlement
}

// Name returns the display name of a participant id, or "Unknown" for ids
// that are not (or no longer) in the ledger.
func (r *Report) Name(participantID string) string {
	for _, p := range r.Participants {
		if p.ID == participantID {
			return p.Name
		}
	}
	return "Unknown"
}

// Ledger returns a ledger by id.
func (b *Book) Ledger(ctx context.Context, ledgerID string) (*models.Ledger, error) {
	return b.store.GetLedger(ctx, ledgerID)
}

// AddParticipant adds a person to the ledger. The name is trimmed and must be
// non-empty and unique within the ledger, ignoring case.
func (b *Book) AddParticipant(ctx context.Context, ledgerID, name string) (*models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("participant name is required: %w", apperrors.ErrValidation)
	}

	participant := &models.Participant{LedgerID: ledgerID, Name: name}
	if err := b.store.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	slog.Info("Participant added", "ledger_id", ledgerID, "participant_id", participant.ID, "name", name)
	return participant, nil
}

// RemoveParticipant removes a person and every expense they paid for. They are
// also dropped from the expenses they shared, whose cost is then split among
// the others. Returns the number of expenses removed.
func (b *Book) RemoveParticipant(ctx context.Context, ledgerID, participantID string) (int, error) {
	removed, err := b.store.DeleteParticipant(ctx, ledgerID, participantID)
	if err != nil {
		return 0, err
	}

	slog.Info("Participant removed",
		"ledger_id", ledgerID,
		"participant_id", participantID,
		"expenses_removed", removed,
	)
	return removed, nil
}

// Participants lists the participants of a ledger in the order they were added.
func (b *Book) Participants(ctx context.Context, ledgerID string) ([]*models.Participant, error) {
	return b.store.ListParticipants(ctx, ledgerID)
}

// AddExpense records an expense shared equally by all current participants.
func (b *Book) AddExpense(ctx context.Context, ledgerID string, in NewExpense) (*models.Expense, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("expense description is required: %w", apperrors.ErrValidation)
	}

	participants, err := b.store.ListParticipants(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	ids := participantIDs(participants)

	expense := &models.Expense{
		LedgerID:     ledgerID,
		Description:  description,
		Amount:       in.Amount,
		PayerID:      in.PayerID,
		Participants: ids,
	}
	if err := calculator.ValidateExpense(toCalculator(expense), ids); err != nil {
		return nil, err
	}

	if err := b.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense added",
		"ledger_id", ledgerID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"payer_id", expense.PayerID,
		"participants_count", len(ids),
	)
	return expense, nil
}

// RemoveExpense deletes one expense.
func (b *Book) RemoveExpense(ctx context.Context, ledgerID, expenseID string) error {
	if err := b.store.DeleteExpense(ctx, ledgerID, expenseID); err != nil {
		return err
	}
	slog.Info("Expense removed", "ledger_id", ledgerID, "expense_id", expenseID)
	return nil
}

// Expenses lists the expenses of a ledger in the order they were recorded.
func (b *Book) Expenses(ctx context.Context, ledgerID string) ([]*models.Expense, error) {
	return b.store.ListExpenses(ctx, ledgerID)
}

// Clear removes every participant and expense from a ledger.
func (b *Book) Clear(ctx context.Context, ledgerID string) error {
	if err := b.store.ClearLedger(ctx, ledgerID); err != nil {
		return err
	}
	slog.Info("Ledger cleared", "ledger_id", ledgerID)
	return nil
}

// Settle computes the balances of every participant and the transfers that
// settle them, from the ledger as currently stored.
func (b *Book) Settle(ctx context.Context, ledgerID string) (*Report, error) {
	ledger, err := b.store.GetLedger(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	participants, err := b.store.ListParticipants(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	expenses, err := b.store.ListExpenses(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	calcExpenses := make([]calculator.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		calcExpenses[i] = toCalculator(e)
	}

	settlement, err := calculator.Settle(participantIDs(participants), calcExpenses)
	if err != nil {
		return nil, fmt.Errorf("failed to settle ledger %s: %w", ledgerID, err)
	}

	if settlement.Warning != nil {
		slog.Warn("Balances do not sum to zero",
			"ledger_id", ledgerID,
			"total", settlement.Warning.Total.String(),
		)
	}
	b.metrics.ObserveSettlement(len(settlement.Transactions), settlement.Warning != nil)

	slog.Debug("Ledger settled",
		"ledger_id", ledgerID,
		"participants_count", len(participants),
		"expenses_count", len(expenses),
		"transactions_count", len(settlement.Transactions),
	)

	return &Report{
		Ledger:       ledger,
		Participants: participants,
		Expenses:     expenses,
		Settlement:   settlement,
	}, nil
}

func participantIDs(participants []*models.Participant) []string {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	return ids
}

func toCalculator(e *models.Expense) calculator.ExpenseForBalance {
	return calculator.ExpenseForBalance{
		ID:           e.ID,
		Amount:       e.Amount,
		PayerID:      e.PayerID,
		Participants: e.Participants,
	}
}
