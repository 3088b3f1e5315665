package stockio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// User-entered quantities and amounts reach the engine as raw strings. They
// are parsed with exact decimals so that "2.0" is a valid lot count while
// "2.5" is not; only after validation do values enter the float64 arithmetic
// of the portfolio.

// ParseLots interprets s as an integer lot count for an equity order.
func ParseLots(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("lots %q: %w", s, ErrInvalidQuantity)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("lots %q: equities trade in whole lots: %w", s, ErrInvalidQuantity)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("lots %q: must be positive: %w", s, ErrInvalidQuantity)
	}
	return d.IntPart(), nil
}

// ParseAmount interprets s as a positive monetary amount for a crypto order.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidQuantity)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount %q: must be positive: %w", s, ErrInvalidQuantity)
	}
	return d.InexactFloat64(), nil
}
