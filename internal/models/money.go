/**
 * @description
 * Fixed-point money type shared by all record models.
 * Wraps shopspring/decimal so price arithmetic never passes through binary floats,
 * and pins the wire format to a 2-decimal string (e.g. "185.50") for compatibility
 * with the data the dashboard already stores.
 *
 * @dependencies
 * - github.com/shopspring/decimal
 */

package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount with 2 fractional digits.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal as Money.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromString parses a decimal string like "185.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// MustMoney parses a decimal string and panics on failure. Fixture use only.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalJSON renders the amount as a quoted 2-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

// UnmarshalJSON accepts both quoted decimal strings and bare JSON numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// Positive reports whether the amount is strictly greater than zero.
func (m Money) Positive() bool {
	return m.Decimal.IsPositive()
}

// Number is a derived decimal statistic (minimum, average, percentage).
// Unlike Money it serializes as a bare JSON number, which is what the
// dashboard client expects for computed fields.
type Number struct {
	decimal.Decimal
}

// NewNumber wraps a decimal as Number.
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// MarshalJSON renders the value as a bare JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON accepts both bare numbers and quoted decimal strings.
func (n *Number) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Decimal = d
	return nil
}
