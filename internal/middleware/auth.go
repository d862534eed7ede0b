package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// LedgerIDKey is the context key for the ledger the caller's token grants access to.
const LedgerIDKey contextKey = "ledger_id"

// GetLedgerID extracts the ledger ID from the context.
// Returns empty string if not found.
func GetLedgerID(ctx context.Context) string {
	ledgerID, _ := ctx.Value(LedgerIDKey).(string)
	return ledgerID
}

// WithLedgerID returns a copy of ctx carrying ledgerID.
func WithLedgerID(ctx context.Context, ledgerID string) context.Context {
	return context.WithValue(ctx, LedgerIDKey, ledgerID)
}

// RequireAuth returns an interceptor that validates the Bearer token of every
// request and adds the ledger ID it grants to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithLedgerID(ctx, claims.LedgerID), req)
		}
	}
}
