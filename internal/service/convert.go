package service

import (
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/api"
)

func toAPILedger(l *models.Ledger) *api.Ledger {
	return &api.Ledger{
		ID:        l.ID,
		Name:      l.Name,
		Protected: l.IsProtected(),
		CreatedAt: l.CreatedAt,
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:             e.ID,
		Description:    e.Description,
		Amount:         e.Amount.String(),
		PayerID:        e.PayerID,
		ParticipantIDs: e.Participants,
		CreatedAt:      e.CreatedAt,
	}
}

func toAPIBalances(r *ledger.Report) []*api.Balance {
	out := make([]*api.Balance, len(r.Balances))
	for i, b := range r.Balances {
		out[i] = &api.Balance{
			ParticipantID: b.ParticipantID,
			Name:          r.Name(b.ParticipantID),
			Paid:          b.Paid.String(),
			Share:         b.Share.String(),
			Net:           b.Net.String(),
		}
	}
	return out
}

func toAPITransactions(r *ledger.Report) []*api.Transaction {
	out := make([]*api.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		out[i] = &api.Transaction{
			From:     t.From,
			FromName: r.Name(t.From),
			To:       t.To,
			ToName:   r.Name(t.To),
			Amount:   t.Amount.String(),
		}
	}
	return out
}
