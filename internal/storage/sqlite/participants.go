package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/models"
)

// CreateParticipant inserts a new participant into a ledger.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}
	nameKey := strings.ToLower(participant.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ledgerExists(ctx, tx, participant.LedgerID); err != nil {
		return err
	}

	var taken int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM participants WHERE ledger_id = ? AND name_key = ?",
		participant.LedgerID, nameKey,
	).Scan(&taken)
	if err == nil {
		return fmt.Errorf("participant %q: %w", participant.Name, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check participant name: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO participants (id, ledger_id, name, name_key, created_at) VALUES (?, ?, ?, ?, ?)",
		participant.ID, participant.LedgerID, participant.Name, nameKey, participant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListParticipants retrieves the participants of a ledger in insertion order.
func (s *SQLiteStore) ListParticipants(ctx context.Context, ledgerID string) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, ledger_id, name, created_at FROM participants WHERE ledger_id = ? ORDER BY rowid",
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.LedgerID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// DeleteParticipant removes a participant and cascades to the expenses they touch:
//  1. expenses they paid for are deleted
//  2. they are dropped from the participant list of every other expense,
//     so the remaining sharers split that expense among themselves
//  3. expenses left with no participants are deleted
func (s *SQLiteStore) DeleteParticipant(ctx context.Context, ledgerID, participantID string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM participants WHERE id = ? AND ledger_id = ?",
		participantID, ledgerID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("participant %s: %w", participantID, apperrors.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check participant existence: %w", err)
	}

	paid, err := tx.ExecContext(ctx,
		"DELETE FROM expenses WHERE ledger_id = ? AND payer_id = ?",
		ledgerID, participantID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete paid expenses: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"DELETE FROM expense_participants WHERE participant_id = ?",
		participantID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge participant from expenses: %w", err)
	}

	orphaned, err := tx.ExecContext(ctx,
		`DELETE FROM expenses WHERE ledger_id = ?
		 AND NOT EXISTS (SELECT 1 FROM expense_participants ep WHERE ep.expense_id = expenses.id)`,
		ledgerID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete empty expenses: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", participantID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	paidCount, _ := paid.RowsAffected()
	orphanedCount, _ := orphaned.RowsAffected()
	return int(paidCount + orphanedCount), nil
}
