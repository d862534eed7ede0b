package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"30", "USD", "$30.00"},
		{"1234.5", "USD", "$1,234.50"},
		{"33.3333333333333333", "USD", "$33.33"},
		{"0.005", "USD", "$0.01"},
		{"12", "", "$12.00"},
		{"12", "jpy", "¥12"},
		{"12.5", "XYZ", "12.50 XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.amount+" "+tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$30.00", FormatSigned(decimal.NewFromInt(30), "USD"))
	assert.Equal(t, "-$30.00", FormatSigned(decimal.NewFromInt(-30), "USD"))
	assert.Equal(t, "$0.00", FormatSigned(decimal.RequireFromString("0.0000001"), "USD"))
	assert.Equal(t, "+5.00 XYZ", FormatSigned(decimal.NewFromInt(5), "XYZ"))
}

func sampleReport(t *testing.T) *ledger.Report {
	t.Helper()
	participants := []*models.Participant{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Carol"},
	}
	expenses := []*models.Expense{
		{ID: "e1", Description: "Groceries", Amount: decimal.NewFromInt(90), PayerID: "a", Participants: []string{"a", "b", "c"}},
	}
	settlement, err := calculator.Settle([]string{"a", "b", "c"}, []calculator.ExpenseForBalance{
		{ID: "e1", Amount: decimal.NewFromInt(90), PayerID: "a", Participants: []string{"a", "b", "c"}},
	})
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	return &ledger.Report{
		Ledger:       &models.Ledger{ID: "l", Name: "Beach | house"},
		Participants: participants,
		Expenses:     expenses,
		Settlement:   settlement,
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport(t), "USD")

	assert.Contains(t, md, `# Beach \| house`)
	assert.Contains(t, md, "**Total spent:** $90.00")
	assert.Contains(t, md, "**Participants:** 3")
	assert.Contains(t, md, "| Alice | $90.00 | $30.00 | +$60.00 |")
	assert.Contains(t, md, "| Carol | $0.00 | $30.00 | -$30.00 |")
	assert.Contains(t, md, "1. **Bob** pays **Alice** $30.00")
	assert.Contains(t, md, "2. **Carol** pays **Alice** $30.00")
	assert.Contains(t, md, "| Groceries | Alice | $90.00 | $30.00 | Alice, Bob, Carol |")
	assert.NotContains(t, md, "Warning")
}

func TestMarkdown_SettledAndWarning(t *testing.T) {
	r := &ledger.Report{
		Ledger: &models.Ledger{Name: "Empty"},
		Settlement: &calculator.Settlement{
			Warning: &calculator.PrecisionWarning{Total: decimal.RequireFromString("0.02")},
		},
	}
	md := Markdown(r, "EUR")

	assert.Contains(t, md, "No participants yet.")
	assert.Contains(t, md, "Everyone is settled up.")
	assert.Contains(t, md, "> **Warning:** balances sum to 0.02 instead of zero")
	assert.NotContains(t, md, "## Expenses")
}

func TestListing(t *testing.T) {
	r := sampleReport(t)
	r.Expenses[0].CreatedAt = 1714521600 // 2024-05-01 UTC

	md := Listing(r, "USD")
	assert.Contains(t, md, "Ledger `l`")
	assert.Contains(t, md, "| Bob | `b` |")
	assert.Contains(t, md, "| Groceries | Alice | $90.00 | 3 | `e1` |")

	empty := Listing(&ledger.Report{Ledger: &models.Ledger{ID: "l", Name: "New"}}, "USD")
	assert.Contains(t, empty, "## Participants\n\nNone.")
	assert.Contains(t, empty, "## Expenses\n\nNone.")
}
