package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/pkg/api"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

var _ apiconnect.SessionServiceHandler = (*SessionService)(nil)

// SessionService implements the SessionService RPC interface.
// It is the only service reachable without a token.
type SessionService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *SessionService {
	return &SessionService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// CreateLedger opens a new ledger and returns a token for it.
func (s *SessionService) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	s.logger.Info("CreateLedger request", "name", req.Msg.Name, "protected", req.Msg.Passphrase != "")

	if err := validateRequest(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	ledger, err := s.authenticator.Create(ctx, req.Msg.Name, req.Msg.Passphrase)
	if err != nil {
		s.logger.Error("CreateLedger failed", "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(ledger)
	if err != nil {
		s.logger.Error("Failed to generate token", "ledger_id", ledger.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Ledger created", "ledger_id", ledger.ID, "name", ledger.Name)
	return connect.NewResponse(&api.CreateLedgerResponse{
		Ledger: toAPILedger(ledger),
		Token:  token,
	}), nil
}

// JoinLedger checks the passphrase of an existing ledger and returns a token for it.
func (s *SessionService) JoinLedger(ctx context.Context, req *connect.Request[api.JoinLedgerRequest]) (*connect.Response[api.JoinLedgerResponse], error) {
	s.logger.Info("JoinLedger request", "ledger_id", req.Msg.LedgerID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	ledger, err := s.authenticator.Join(ctx, req.Msg.LedgerID, req.Msg.Passphrase)
	if err != nil {
		s.logger.Warn("JoinLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(ledger)
	if err != nil {
		s.logger.Error("Failed to generate token", "ledger_id", ledger.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.JoinLedgerResponse{
		Ledger: toAPILedger(ledger),
		Token:  token,
	}), nil
}
