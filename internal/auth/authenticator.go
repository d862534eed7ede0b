package auth

import (
	"context"

	"github.com/mmynk/settleup/internal/models"
)

// Authenticator defines how ledgers are opened and joined.
// This abstraction allows swapping the credential scheme (passphrase, invite
// links, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Create opens a new ledger protected by the given credential.
	// An empty credential creates an open ledger.
	Create(ctx context.Context, name, credential string) (*models.Ledger, error)

	// Join verifies the credential for an existing ledger and returns it.
	Join(ctx context.Context, ledgerID, credential string) (*models.Ledger, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
