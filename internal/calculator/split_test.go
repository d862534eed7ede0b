package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		n       int
		want    string
		wantErr bool
	}{
		{name: "three-way even split", amount: "90", n: 3, want: "30"},
		{name: "two-way split with cents", amount: "33.50", n: 2, want: "16.75"},
		{name: "single participant keeps the whole amount", amount: "12.34", n: 1, want: "12.34"},
		{name: "uneven split is not rounded", amount: "100", n: 3, want: "33.3333333333333333"},
		{name: "no participants should error", amount: "10", n: 0, wantErr: true},
		{name: "negative count should error", amount: "10", n: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, err := SplitEqually(decimal.RequireFromString(tt.amount), tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.want, share)
		})
	}
}

func TestTotalSpent(t *testing.T) {
	expenses := []ExpenseForBalance{
		{Amount: dec("100")},
		{Amount: dec("40.25")},
		{Amount: dec("0.75")},
	}
	assertDecimal(t, "141", TotalSpent(expenses))
	assertDecimal(t, "0", TotalSpent(nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "got %s, want %s", got, want)
}

// assertNear checks got is within Epsilon of want.
func assertNear(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Sub(dec(want)).Abs().LessThanOrEqual(Epsilon), "got %s, want ~%s", got, want)
}
