package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders amount in the currency's display format, e.g. "1.350.000 ₫".
// Unknown currency codes fall back to the plain decimal string followed by the code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.String() + " " + currency
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatSigned is FormatAmount with a leading "+" on positive amounts.
func FormatSigned(amount decimal.Decimal, currency string) string {
	if amount.IsPositive() {
		return "+" + FormatAmount(amount, currency)
	}
	return FormatAmount(amount, currency)
}
