// Package report renders ledgers and settlements for people: currency
// formatting and a markdown summary.
package report

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// minorUnits converts amount to the currency's smallest unit, rounding half away from zero.
// It reports false for currencies go-money does not know.
func minorUnits(amount decimal.Decimal, currency string) (int64, bool) {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return 0, false
	}
	return amount.Shift(int32(cur.Fraction)).Round(0).IntPart(), true
}

// FormatAmount formats amount in currency, e.g. "$1,234.50".
// Unknown currencies fall back to "1234.50 XYZ".
func FormatAmount(amount decimal.Decimal, currency string) string {
	currency = normalize(currency)
	minor, ok := minorUnits(amount, currency)
	if !ok {
		return amount.StringFixed(2) + " " + currency
	}
	return money.New(minor, currency).Display()
}

// FormatSigned formats a balance with an explicit sign: "+$5.00", "-$5.00", "$0.00".
func FormatSigned(amount decimal.Decimal, currency string) string {
	currency = normalize(currency)
	minor, ok := minorUnits(amount, currency)
	if !ok {
		if amount.Round(2).IsPositive() {
			return "+" + amount.StringFixed(2) + " " + currency
		}
		return amount.StringFixed(2) + " " + currency
	}
	s := money.New(minor, currency).Display()
	if minor > 0 {
		return "+" + s
	}
	return s
}

func normalize(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}
