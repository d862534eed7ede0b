package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/pkg/api"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService service.
	LedgerServiceName = "settleup.v1.LedgerService"
)

const (
	// LedgerServiceAddParticipantProcedure is the fully-qualified name of the LedgerService's AddParticipant RPC.
	LedgerServiceAddParticipantProcedure = "/settleup.v1.LedgerService/AddParticipant"
	// LedgerServiceRemoveParticipantProcedure is the fully-qualified name of the LedgerService's RemoveParticipant RPC.
	LedgerServiceRemoveParticipantProcedure = "/settleup.v1.LedgerService/RemoveParticipant"
	// LedgerServiceListParticipantsProcedure is the fully-qualified name of the LedgerService's ListParticipants RPC.
	LedgerServiceListParticipantsProcedure = "/settleup.v1.LedgerService/ListParticipants"
	// LedgerServiceAddExpenseProcedure is the fully-qualified name of the LedgerService's AddExpense RPC.
	LedgerServiceAddExpenseProcedure = "/settleup.v1.LedgerService/AddExpense"
	// LedgerServiceRemoveExpenseProcedure is the fully-qualified name of the LedgerService's RemoveExpense RPC.
	LedgerServiceRemoveExpenseProcedure = "/settleup.v1.LedgerService/RemoveExpense"
	// LedgerServiceListExpensesProcedure is the fully-qualified name of the LedgerService's ListExpenses RPC.
	LedgerServiceListExpensesProcedure = "/settleup.v1.LedgerService/ListExpenses"
	// LedgerServiceClearLedgerProcedure is the fully-qualified name of the LedgerService's ClearLedger RPC.
	LedgerServiceClearLedgerProcedure = "/settleup.v1.LedgerService/ClearLedger"
	// LedgerServiceGetBalancesProcedure is the fully-qualified name of the LedgerService's GetBalances RPC.
	LedgerServiceGetBalancesProcedure = "/settleup.v1.LedgerService/GetBalances"
	// LedgerServiceGetSettlementProcedure is the fully-qualified name of the LedgerService's GetSettlement RPC.
	LedgerServiceGetSettlementProcedure = "/settleup.v1.LedgerService/GetSettlement"
)

// LedgerServiceClient is a client for the settleup.v1.LedgerService service.
type LedgerServiceClient interface {
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ClearLedger(context.Context, *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceClient constructs a client for the settleup.v1.LedgerService service.
// Every call needs an "Authorization: Bearer <token>" header, see WithToken.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(api.Codec{})))
	return &ledgerServiceClient{
		addParticipant: connect.NewClient[api.AddParticipantRequest, api.AddParticipantResponse](
			httpClient,
			baseURL+LedgerServiceAddParticipantProcedure,
			opts...,
		),
		removeParticipant: connect.NewClient[api.RemoveParticipantRequest, api.RemoveParticipantResponse](
			httpClient,
			baseURL+LedgerServiceRemoveParticipantProcedure,
			opts...,
		),
		listParticipants: connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](
			httpClient,
			baseURL+LedgerServiceListParticipantsProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+LedgerServiceAddExpenseProcedure,
			opts...,
		),
		removeExpense: connect.NewClient[api.RemoveExpenseRequest, api.RemoveExpenseResponse](
			httpClient,
			baseURL+LedgerServiceRemoveExpenseProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+LedgerServiceListExpensesProcedure,
			opts...,
		),
		clearLedger: connect.NewClient[api.ClearLedgerRequest, api.ClearLedgerResponse](
			httpClient,
			baseURL+LedgerServiceClearLedgerProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+LedgerServiceGetBalancesProcedure,
			opts...,
		),
		getSettlement: connect.NewClient[api.GetSettlementRequest, api.GetSettlementResponse](
			httpClient,
			baseURL+LedgerServiceGetSettlementProcedure,
			opts...,
		),
	}
}

type ledgerServiceClient struct {
	addParticipant    *connect.Client[api.AddParticipantRequest, api.AddParticipantResponse]
	removeParticipant *connect.Client[api.RemoveParticipantRequest, api.RemoveParticipantResponse]
	listParticipants  *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	addExpense        *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	removeExpense     *connect.Client[api.RemoveExpenseRequest, api.RemoveExpenseResponse]
	listExpenses      *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	clearLedger       *connect.Client[api.ClearLedgerRequest, api.ClearLedgerResponse]
	getBalances       *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	getSettlement     *connect.Client[api.GetSettlementRequest, api.GetSettlementResponse]
}

func (c *ledgerServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	return c.removeExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ClearLedger(ctx context.Context, req *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error) {
	return c.clearLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the settleup.v1.LedgerService service.
type LedgerServiceHandler interface {
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ClearLedger(context.Context, *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(api.Codec{})))
	addParticipantHandler := connect.NewUnaryHandler(
		LedgerServiceAddParticipantProcedure,
		svc.AddParticipant,
		opts...,
	)
	removeParticipantHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveParticipantProcedure,
		svc.RemoveParticipant,
		opts...,
	)
	listParticipantsHandler := connect.NewUnaryHandler(
		LedgerServiceListParticipantsProcedure,
		svc.ListParticipants,
		opts...,
	)
	addExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	removeExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveExpenseProcedure,
		svc.RemoveExpense,
		opts...,
	)
	listExpensesHandler := connect.NewUnaryHandler(
		LedgerServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	clearLedgerHandler := connect.NewUnaryHandler(
		LedgerServiceClearLedgerProcedure,
		svc.ClearLedger,
		opts...,
	)
	getBalancesHandler := connect.NewUnaryHandler(
		LedgerServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	getSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceGetSettlementProcedure,
		svc.GetSettlement,
		opts...,
	)
	return "/settleup.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceAddParticipantProcedure:
			addParticipantHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveParticipantProcedure:
			removeParticipantHandler.ServeHTTP(w, r)
		case LedgerServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case LedgerServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveExpenseProcedure:
			removeExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case LedgerServiceClearLedgerProcedure:
			clearLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceGetBalancesProcedure:
			getBalancesHandler.ServeHTTP(w, r)
		case LedgerServiceGetSettlementProcedure:
			getSettlementHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
