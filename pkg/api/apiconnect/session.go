// Package apiconnect holds the Connect bindings for the settleup.v1 services.
// It follows the shape of protoc-gen-connect-go output, with api.Codec in
// place of protobuf.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/pkg/api"
)

const (
	// SessionServiceName is the fully-qualified name of the SessionService service.
	SessionServiceName = "settleup.v1.SessionService"
)

const (
	// SessionServiceCreateLedgerProcedure is the fully-qualified name of the SessionService's
	// CreateLedger RPC.
	SessionServiceCreateLedgerProcedure = "/settleup.v1.SessionService/CreateLedger"
	// SessionServiceJoinLedgerProcedure is the fully-qualified name of the SessionService's
	// JoinLedger RPC.
	SessionServiceJoinLedgerProcedure = "/settleup.v1.SessionService/JoinLedger"
)

// withCodec prepends the JSON codec so caller options can still override it.
func withCodec[T any](opts []T, codec T) []T {
	return append([]T{codec}, opts...)
}

// SessionServiceClient is a client for the settleup.v1.SessionService service.
type SessionServiceClient interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	JoinLedger(context.Context, *connect.Request[api.JoinLedgerRequest]) (*connect.Response[api.JoinLedgerResponse], error)
}

// NewSessionServiceClient constructs a client for the settleup.v1.SessionService service.
//
// The URL supplied here should be the base URL for the Connect server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SessionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(api.Codec{})))
	return &sessionServiceClient{
		createLedger: connect.NewClient[api.CreateLedgerRequest, api.CreateLedgerResponse](
			httpClient,
			baseURL+SessionServiceCreateLedgerProcedure,
			opts...,
		),
		joinLedger: connect.NewClient[api.JoinLedgerRequest, api.JoinLedgerResponse](
			httpClient,
			baseURL+SessionServiceJoinLedgerProcedure,
			opts...,
		),
	}
}

type sessionServiceClient struct {
	createLedger *connect.Client[api.CreateLedgerRequest, api.CreateLedgerResponse]
	joinLedger   *connect.Client[api.JoinLedgerRequest, api.JoinLedgerResponse]
}

func (c *sessionServiceClient) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *sessionServiceClient) JoinLedger(ctx context.Context, req *connect.Request[api.JoinLedgerRequest]) (*connect.Response[api.JoinLedgerResponse], error) {
	return c.joinLedger.CallUnary(ctx, req)
}

// SessionServiceHandler is an implementation of the settleup.v1.SessionService service.
type SessionServiceHandler interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	JoinLedger(context.Context, *connect.Request[api.JoinLedgerRequest]) (*connect.Response[api.JoinLedgerResponse], error)
}

// NewSessionServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
func NewSessionServiceHandler(svc SessionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(api.Codec{})))
	createLedgerHandler := connect.NewUnaryHandler(
		SessionServiceCreateLedgerProcedure,
		svc.CreateLedger,
		opts...,
	)
	joinLedgerHandler := connect.NewUnaryHandler(
		SessionServiceJoinLedgerProcedure,
		svc.JoinLedger,
		opts...,
	)
	return "/settleup.v1.SessionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SessionServiceCreateLedgerProcedure:
			createLedgerHandler.ServeHTTP(w, r)
		case SessionServiceJoinLedgerProcedure:
			joinLedgerHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
