package calculator

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		expenses     []ExpenseForBalance
		want         map[string]string
		wantOrder    []string
	}{
		{
			name:         "no participants and no expenses",
			participants: nil,
			expenses:     nil,
			want:         map[string]string{},
			wantOrder:    []string{},
		},
		{
			name:         "participants without expenses are all zero",
			participants: []string{"alice", "bob", "carol"},
			want:         map[string]string{"alice": "0", "bob": "0", "carol": "0"},
			wantOrder:    []string{"alice", "bob", "carol"},
		},
		{
			name:         "one expense split three ways",
			participants: []string{"alice", "bob", "carol"},
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: dec("90"), PayerID: "alice", Participants: []string{"alice", "bob", "carol"}},
			},
			want:      map[string]string{"alice": "60", "bob": "-30", "carol": "-30"},
			wantOrder: []string{"alice", "bob", "carol"},
		},
		{
			name:         "two expenses offset each other",
			participants: []string{"alice", "bob"},
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: dec("100"), PayerID: "alice", Participants: []string{"alice", "bob"}},
				{ID: "e2", Amount: dec("40"), PayerID: "bob", Participants: []string{"alice", "bob"}},
			},
			want:      map[string]string{"alice": "30", "bob": "-30"},
			wantOrder: []string{"alice", "bob"},
		},
		{
			name:         "payer outside the sharer list",
			participants: []string{"alice", "bob", "carol"},
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: dec("50"), PayerID: "carol", Participants: []string{"alice", "bob"}},
			},
			want:      map[string]string{"alice": "-25", "bob": "-25", "carol": "50"},
			wantOrder: []string{"alice", "bob", "carol"},
		},
		{
			name:         "unknown ids are appended in encounter order",
			participants: []string{"alice"},
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: dec("30"), PayerID: "ghost", Participants: []string{"alice", "bob"}},
			},
			want:      map[string]string{"alice": "-15", "ghost": "30", "bob": "-15"},
			wantOrder: []string{"alice", "ghost", "bob"},
		},
		{
			name:         "duplicate participant ids collapse",
			participants: []string{"alice", "bob", "alice"},
			want:         map[string]string{"alice": "0", "bob": "0"},
			wantOrder:    []string{"alice", "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.participants, tt.expenses)
			require.NoError(t, err)
			require.Len(t, balances, len(tt.want))

			order := make([]string, len(balances))
			for i, bal := range balances {
				order[i] = bal.ParticipantID
			}
			assert.Equal(t, tt.wantOrder, order)

			for id, want := range tt.want {
				got, ok := balances.Get(id)
				require.Truef(t, ok, "missing balance for %s", id)
				assertDecimal(t, want, got)
			}
			assertDecimal(t, "0", balances.Total())
		})
	}
}

func TestComputeBalances_PaidAndShare(t *testing.T) {
	balances, err := ComputeBalances([]string{"alice", "bob"}, []ExpenseForBalance{
		{ID: "e1", Amount: dec("100"), PayerID: "alice", Participants: []string{"alice", "bob"}},
		{ID: "e2", Amount: dec("40"), PayerID: "bob", Participants: []string{"alice", "bob"}},
	})
	require.NoError(t, err)

	alice := balances[0]
	assertDecimal(t, "100", alice.Paid)
	assertDecimal(t, "70", alice.Share)
	assertDecimal(t, "30", alice.Net)

	bob := balances[1]
	assertDecimal(t, "40", bob.Paid)
	assertDecimal(t, "70", bob.Share)
	assertDecimal(t, "-30", bob.Net)
}

func TestComputeBalances_InvalidExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense ExpenseForBalance
	}{
		{
			name:    "empty participant list",
			expense: ExpenseForBalance{ID: "e1", Amount: dec("10"), PayerID: "alice"},
		},
		{
			name:    "zero amount",
			expense: ExpenseForBalance{ID: "e1", Amount: dec("0"), PayerID: "alice", Participants: []string{"alice"}},
		},
		{
			name:    "negative amount",
			expense: ExpenseForBalance{ID: "e1", Amount: dec("-5"), PayerID: "alice", Participants: []string{"alice"}},
		},
		{
			name:    "participant listed twice",
			expense: ExpenseForBalance{ID: "e1", Amount: dec("10"), PayerID: "alice", Participants: []string{"alice", "alice"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances([]string{"alice"}, []ExpenseForBalance{tt.expense})
			assert.Nil(t, balances)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidExpense))

			var invalid *InvalidExpenseError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "e1", invalid.ExpenseID)
		})
	}
}

func TestComputeBalances_OrderIndependent(t *testing.T) {
	participants := []string{"alice", "bob", "carol"}
	expenses := []ExpenseForBalance{
		{ID: "e1", Amount: dec("90"), PayerID: "alice", Participants: participants},
		{ID: "e2", Amount: dec("45.50"), PayerID: "bob", Participants: []string{"bob", "carol"}},
		{ID: "e3", Amount: dec("12"), PayerID: "carol", Participants: participants},
	}
	reversed := []ExpenseForBalance{expenses[2], expenses[1], expenses[0]}

	forward, err := ComputeBalances(participants, expenses)
	require.NoError(t, err)
	backward, err := ComputeBalances(participants, reversed)
	require.NoError(t, err)

	for _, bal := range forward {
		got, ok := backward.Get(bal.ParticipantID)
		require.True(t, ok)
		assertNear(t, bal.Net.String(), got)
	}
}

func TestComputeBalances_ZeroSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(8)
		participants := make([]string, n)
		for i := range participants {
			participants[i] = "p" + strconv.Itoa(i)
		}

		var expenses []ExpenseForBalance
		for e := 0; e < rng.Intn(12); e++ {
			sharers := make([]string, 0, n)
			for _, p := range participants {
				if rng.Intn(3) > 0 {
					sharers = append(sharers, p)
				}
			}
			if len(sharers) == 0 {
				sharers = append(sharers, participants[0])
			}
			expenses = append(expenses, ExpenseForBalance{
				ID:           "e" + strconv.Itoa(e),
				Amount:       decimal.New(int64(1+rng.Intn(100000)), -2),
				PayerID:      participants[rng.Intn(n)],
				Participants: sharers,
			})
		}

		balances, err := ComputeBalances(participants, expenses)
		require.NoError(t, err)
		assert.Nil(t, CheckZeroSum(balances), "round %d", round)
		assertNear(t, "0", balances.Total())
	}
}

func TestCheckZeroSum(t *testing.T) {
	assert.Nil(t, CheckZeroSum(nil))
	assert.Nil(t, CheckZeroSum(Balances{
		{ParticipantID: "alice", Net: dec("10.005")},
		{ParticipantID: "bob", Net: dec("-10")},
	}))

	warning := CheckZeroSum(Balances{
		{ParticipantID: "alice", Net: dec("50")},
		{ParticipantID: "bob", Net: dec("-20")},
	})
	require.NotNil(t, warning)
	assertDecimal(t, "30", warning.Total)
	assert.Contains(t, warning.Error(), "30")
}

func TestValidateExpense(t *testing.T) {
	known := []string{"alice", "bob"}

	tests := []struct {
		name    string
		expense ExpenseForBalance
		wantErr bool
	}{
		{
			name:    "valid expense",
			expense: ExpenseForBalance{Amount: dec("10"), PayerID: "alice", Participants: known},
		},
		{
			name:    "missing payer",
			expense: ExpenseForBalance{Amount: dec("10"), Participants: known},
			wantErr: true,
		},
		{
			name:    "unknown payer",
			expense: ExpenseForBalance{Amount: dec("10"), PayerID: "mallory", Participants: known},
			wantErr: true,
		},
		{
			name:    "unknown sharer",
			expense: ExpenseForBalance{Amount: dec("10"), PayerID: "alice", Participants: []string{"alice", "zed"}},
			wantErr: true,
		},
		{
			name:    "no sharers",
			expense: ExpenseForBalance{Amount: dec("10"), PayerID: "alice"},
			wantErr: true,
		},
		{
			name:    "non-positive amount",
			expense: ExpenseForBalance{Amount: decimal.Zero, PayerID: "alice", Participants: known},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.expense, known)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidExpense)
		})
	}
}
