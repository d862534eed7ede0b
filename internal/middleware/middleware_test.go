package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/api"
)

// echoLedger is a terminal UnaryFunc that reports the ledger ID it was called with.
func echoLedger(got *string) connect.UnaryFunc {
	return func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		*got = GetLedgerID(ctx)
		return connect.NewResponse(&api.ClearLedgerResponse{}), nil
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.Ledger{ID: "ledger-1"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantLedger string
		wantErr    bool
	}{
		{name: "valid token", header: "Bearer " + token, wantLedger: "ledger-1"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "malformed header", header: "Bearer", wantErr: true},
		{name: "bad token", header: "Bearer nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			req := connect.NewRequest(&api.ClearLedgerRequest{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(jwtManager)(echoLedger(&got))(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLedger, got)
		})
	}
}

func TestGetLedgerID_Empty(t *testing.T) {
	assert.Empty(t, GetLedgerID(context.Background()))
	assert.Equal(t, "x", GetLedgerID(WithLedgerID(context.Background(), "x")))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	wantErr := connect.NewError(connect.CodeNotFound, errors.New("gone"))
	failing := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) { return nil, wantErr }

	_, err := LoggingInterceptor()(failing)(context.Background(), connect.NewRequest(&api.ClearLedgerRequest{}))
	assert.Same(t, wantErr, err)

	var got string
	ctx := WithLedgerID(context.Background(), "ledger-9")
	_, err = LoggingInterceptor()(echoLedger(&got))(ctx, connect.NewRequest(&api.ClearLedgerRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "ledger-9", got)
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	interceptor := MetricsInterceptor(m)

	var got string
	_, err := interceptor(echoLedger(&got))(context.Background(), connect.NewRequest(&api.ClearLedgerRequest{}))
	require.NoError(t, err)

	failing := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))
	}
	_, err = interceptor(failing)(context.Background(), connect.NewRequest(&api.ClearLedgerRequest{}))
	require.Error(t, err)

	// Requests built outside a client or handler carry an empty procedure.
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "invalid_argument")))

	t.Run("nil metrics", func(t *testing.T) {
		_, err := MetricsInterceptor(nil)(echoLedger(&got))(context.Background(), connect.NewRequest(&api.ClearLedgerRequest{}))
		assert.NoError(t, err)
	})
}
