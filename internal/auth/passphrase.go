package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid ledger or passphrase")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 8 characters")
)

// LedgerStorage is the subset of storage.Store the authenticator needs.
type LedgerStorage interface {
	CreateLedger(ctx context.Context, ledger *models.Ledger) error
	GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error)
}

// PassphraseAuthenticator protects ledgers with an optional bcrypt-hashed passphrase.
type PassphraseAuthenticator struct {
	storage LedgerStorage
}

// NewPassphraseAuthenticator creates a new passphrase-based authenticator.
func NewPassphraseAuthenticator(storage LedgerStorage) *PassphraseAuthenticator {
	return &PassphraseAuthenticator{storage: storage}
}

// ValidateCredential accepts an empty passphrase (open ledger) or one of at least 8 characters.
func (a *PassphraseAuthenticator) ValidateCredential(credential string) error {
	if credential != "" && len(credential) < 8 {
		return ErrWeakPassphrase
	}
	return nil
}

// Create stores a new ledger, hashing its passphrase if one is given.
func (a *PassphraseAuthenticator) Create(ctx context.Context, name, credential string) (*models.Ledger, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	ledger := &models.Ledger{Name: strings.TrimSpace(name)}
	if credential != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash passphrase: %w", err)
		}
		ledger.PassphraseHash = string(hash)
	}

	if err := a.storage.CreateLedger(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	return ledger, nil
}

// Join checks the passphrase of an existing ledger.
// Unknown ledgers and wrong passphrases both yield ErrInvalidCredentials.
func (a *PassphraseAuthenticator) Join(ctx context.Context, ledgerID, credential string) (*models.Ledger, error) {
	ledger, err := a.storage.GetLedger(ctx, ledgerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !ledger.IsProtected() {
		return ledger, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ledger.PassphraseHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return ledger, nil
}
