package stockio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value for monetary quantities. The engine itself
// computes in float64; Money exists so that renderers format amounts with
// proper currency conventions (thousands separators, symbol, fraction
// digits) instead of raw floats.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps a float amount in a currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency resolves the full currency definition; going through the
// go-money constructor guarantees a non-nil currency even for odd codes.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount following its currency conventions.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString formats the amount with an explicit sign; zero renders "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }
