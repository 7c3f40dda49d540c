package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a price may carry.
// It matches the NUMERIC(18,2) column the catalog is stored in.
const PriceScale = 2

// Money represents a monetary value with fixed-point decimal arithmetic.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromDecimal(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal format: %s", s)
	}
	return &Money{amount: d}, nil
}

// MustMoney is NewMoneyFromDecimal for literals known to be valid.
func MustMoney(s string) *Money {
	m, err := NewMoneyFromDecimal(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromRat creates Money from a big.Rat as returned by NUMERIC columns.
// The value is rounded to nine fractional digits, the NUMERIC maximum.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	d, err := decimal.NewFromString(rat.FloatString(9))
	if err != nil {
		// FloatString always yields a parseable decimal.
		panic(err)
	}
	return &Money{amount: d}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// FitsScale reports whether the amount has at most PriceScale fractional digits.
func (m *Money) FitsScale() bool {
	return m.amount.Equal(m.amount.Truncate(PriceScale))
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Equal(other.amount)
}

// Rat returns the amount as a big.Rat, the Go type Spanner uses for NUMERIC.
func (m *Money) Rat() *big.Rat {
	return m.amount.Rat()
}

// String returns the amount with exactly PriceScale fractional digits, e.g. "1299.99".
func (m *Money) String() string {
	return m.amount.StringFixed(PriceScale)
}
