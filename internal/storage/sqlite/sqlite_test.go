package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestLedger(t *testing.T, store *SQLiteStore) *models.Ledger {
	t.Helper()
	ledger := &models.Ledger{Name: "Test trip"}
	require.NoError(t, store.CreateLedger(context.Background(), ledger))
	return ledger
}

func addParticipants(t *testing.T, store *SQLiteStore, ledgerID string, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		p := &models.Participant{LedgerID: ledgerID, Name: name}
		require.NoError(t, store.CreateParticipant(context.Background(), p))
		ids[i] = p.ID
	}
	return ids
}

func TestSQLiteStore_Ledgers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateLedger generates ID and name", func(t *testing.T) {
		ledger := &models.Ledger{}
		require.NoError(t, store.CreateLedger(ctx, ledger))

		assert.NotEmpty(t, ledger.ID)
		assert.NotZero(t, ledger.CreatedAt)
		assert.Contains(t, ledger.Name, "Ledger -")
	})

	t.Run("GetLedger retrieves stored fields", func(t *testing.T) {
		original := &models.Ledger{Name: "Ski trip", PassphraseHash: "hash"}
		require.NoError(t, store.CreateLedger(ctx, original))

		retrieved, err := store.GetLedger(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, original, retrieved)
		assert.True(t, retrieved.IsProtected())
	})

	t.Run("GetLedger returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetLedger(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSQLiteStore_Participants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ledger := newTestLedger(t, store)

	ids := addParticipants(t, store, ledger.ID, "Alice", "Bob", "Carol")

	t.Run("ListParticipants keeps insertion order", func(t *testing.T) {
		participants, err := store.ListParticipants(ctx, ledger.ID)
		require.NoError(t, err)
		require.Len(t, participants, 3)
		for i, p := range participants {
			assert.Equal(t, ids[i], p.ID)
			assert.Equal(t, ledger.ID, p.LedgerID)
		}
		assert.Equal(t, "Carol", participants[2].Name)
	})

	t.Run("names are unique regardless of case", func(t *testing.T) {
		err := store.CreateParticipant(ctx, &models.Participant{LedgerID: ledger.ID, Name: "aLiCe"})
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("same name in another ledger is fine", func(t *testing.T) {
		other := newTestLedger(t, store)
		addParticipants(t, store, other.ID, "Alice")
	})

	t.Run("unknown ledger", func(t *testing.T) {
		err := store.CreateParticipant(ctx, &models.Participant{LedgerID: "missing", Name: "Zed"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("DeleteParticipant unknown id", func(t *testing.T) {
		_, err := store.DeleteParticipant(ctx, ledger.ID, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSQLiteStore_Expenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ledger := newTestLedger(t, store)
	ids := addParticipants(t, store, ledger.ID, "Alice", "Bob", "Carol")

	dinner := &models.Expense{
		LedgerID:     ledger.ID,
		Description:  "Dinner",
		Amount:       decimal.RequireFromString("90.15"),
		PayerID:      ids[0],
		Participants: ids,
	}
	require.NoError(t, store.CreateExpense(ctx, dinner))
	assert.NotEmpty(t, dinner.ID)
	assert.NotZero(t, dinner.CreatedAt)

	taxi := &models.Expense{
		LedgerID:     ledger.ID,
		Description:  "Taxi",
		Amount:       decimal.RequireFromString("12"),
		PayerID:      ids[2],
		Participants: []string{ids[2], ids[1]},
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix(),
	}
	require.NoError(t, store.CreateExpense(ctx, taxi))

	t.Run("ListExpenses returns snapshots in order", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx, ledger.ID)
		require.NoError(t, err)
		require.Len(t, expenses, 2)

		assert.Equal(t, dinner.ID, expenses[0].ID)
		assert.True(t, expenses[0].Amount.Equal(dinner.Amount), "amount %s", expenses[0].Amount)
		assert.Equal(t, ids, expenses[0].Participants)

		assert.Equal(t, taxi.ID, expenses[1].ID)
		assert.Equal(t, []string{ids[2], ids[1]}, expenses[1].Participants)
		assert.Equal(t, taxi.CreatedAt, expenses[1].CreatedAt)
	})

	t.Run("snapshot does not follow new participants", func(t *testing.T) {
		addParticipants(t, store, ledger.ID, "Dave")
		expenses, err := store.ListExpenses(ctx, ledger.ID)
		require.NoError(t, err)
		assert.Len(t, expenses[0].Participants, 3)
	})

	t.Run("expense with unknown payer is rejected", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			LedgerID:     ledger.ID,
			Description:  "Ghost",
			Amount:       decimal.NewFromInt(5),
			PayerID:      "ghost",
			Participants: ids,
		})
		assert.Error(t, err)
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		require.NoError(t, store.DeleteExpense(ctx, ledger.ID, taxi.ID))
		assert.ErrorIs(t, store.DeleteExpense(ctx, ledger.ID, taxi.ID), apperrors.ErrNotFound)

		expenses, err := store.ListExpenses(ctx, ledger.ID)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, dinner.ID, expenses[0].ID)
	})
}

func TestSQLiteStore_DeleteParticipantCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ledger := newTestLedger(t, store)
	ids := addParticipants(t, store, ledger.ID, "Alice", "Bob", "Carol")
	alice, bob, carol := ids[0], ids[1], ids[2]

	paidByBob := &models.Expense{LedgerID: ledger.ID, Description: "Hotel", Amount: decimal.NewFromInt(300), PayerID: bob, Participants: ids}
	paidByAlice := &models.Expense{LedgerID: ledger.ID, Description: "Fuel", Amount: decimal.NewFromInt(60), PayerID: alice, Participants: ids}
	onlyBob := &models.Expense{LedgerID: ledger.ID, Description: "Gift for Bob", Amount: decimal.NewFromInt(20), PayerID: carol, Participants: []string{bob}}
	for _, e := range []*models.Expense{paidByBob, paidByAlice, onlyBob} {
		require.NoError(t, store.CreateExpense(ctx, e))
	}

	removed, err := store.DeleteParticipant(ctx, ledger.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, 2, removed, "paid expense and emptied expense")

	participants, err := store.ListParticipants(ctx, ledger.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, alice, participants[0].ID)
	assert.Equal(t, carol, participants[1].ID)

	expenses, err := store.ListExpenses(ctx, ledger.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, paidByAlice.ID, expenses[0].ID)
	assert.Equal(t, []string{alice, carol}, expenses[0].Participants)
}

func TestSQLiteStore_ClearLedger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ledger := newTestLedger(t, store)
	ids := addParticipants(t, store, ledger.ID, "Alice", "Bob")
	require.NoError(t, store.CreateExpense(ctx, &models.Expense{
		LedgerID: ledger.ID, Description: "Lunch", Amount: decimal.NewFromInt(20), PayerID: ids[0], Participants: ids,
	}))

	other := newTestLedger(t, store)
	addParticipants(t, store, other.ID, "Zoe")

	require.NoError(t, store.ClearLedger(ctx, ledger.ID))

	participants, err := store.ListParticipants(ctx, ledger.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)
	expenses, err := store.ListExpenses(ctx, ledger.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	_, err = store.GetLedger(ctx, ledger.ID)
	assert.NoError(t, err, "ledger itself survives")

	untouched, err := store.ListParticipants(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, untouched, 1)

	assert.ErrorIs(t, store.ClearLedger(ctx, "missing"), apperrors.ErrNotFound)
}

func TestGenerateName(t *testing.T) {
	got := generateName(time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "Ledger - Mar 9, 2024", got)
}
