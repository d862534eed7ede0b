package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/pkg/api"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService. Every call acts on the
// ledger named by the caller's token.
type LedgerService struct {
	book *ledger.Book
}

// NewLedgerService creates a new LedgerService over book.
func NewLedgerService(book *ledger.Book) *LedgerService {
	return &LedgerService{book: book}
}

// ledgerFor returns the ledger ID set by RequireAuth after validating msg.
func ledgerFor(ctx context.Context, msg any) (string, error) {
	ledgerID := middleware.GetLedgerID(ctx)
	if ledgerID == "" {
		return "", toConnectError(auth.ErrMissingToken)
	}
	if err := validateRequest(msg); err != nil {
		return "", toConnectError(err)
	}
	return ledgerID, nil
}

// AddParticipant adds a person to the ledger.
func (s *LedgerService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	participant, err := s.book.AddParticipant(ctx, ledgerID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: toAPIParticipant(participant),
	}), nil
}

// RemoveParticipant removes a person, the expenses they paid, and their share of the rest.
func (s *LedgerService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	removed, err := s.book.RemoveParticipant(ctx, ledgerID, req.Msg.ParticipantID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveParticipantResponse{ExpensesRemoved: removed}), nil
}

// ListParticipants lists the ledger's participants in the order they were added.
func (s *LedgerService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	participants, err := s.book.Participants(ctx, ledgerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = toAPIParticipant(p)
	}
	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// AddExpense records an expense shared by everyone currently in the ledger.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, req.Msg.Amount))
	}

	expense, err := s.book.AddExpense(ctx, ledgerID, ledger.NewExpense{
		Description: req.Msg.Description,
		Amount:      amount,
		PayerID:     req.Msg.PayerID,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// RemoveExpense deletes one expense.
func (s *LedgerService) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	if err := s.book.RemoveExpense(ctx, ledgerID, req.Msg.ExpenseID); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveExpenseResponse{}), nil
}

// ListExpenses lists the ledger's expenses in the order they were recorded.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	expenses, err := s.book.Expenses(ctx, ledgerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// ClearLedger removes every participant and expense.
func (s *LedgerService) ClearLedger(ctx context.Context, req *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	if err := s.book.Clear(ctx, ledgerID); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ClearLedgerResponse{}), nil
}

// GetBalances returns each participant's paid, share and net amounts.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	report, err := s.book.Settle(ctx, ledgerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:   toAPIBalances(report),
		TotalSpent: report.TotalSpent.String(),
	}), nil
}

// GetSettlement returns the balances and the transfers that settle them.
func (s *LedgerService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	ledgerID, err := ledgerFor(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	report, err := s.book.Settle(ctx, ledgerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &api.GetSettlementResponse{
		Balances:     toAPIBalances(report),
		Transactions: toAPITransactions(report),
		TotalSpent:   report.TotalSpent.String(),
	}
	if report.Warning != nil {
		resp.Warning = report.Warning.Error()
	}
	return connect.NewResponse(resp), nil
}
