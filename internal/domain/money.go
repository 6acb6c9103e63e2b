package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when a price is built without an explicit unit.
var DefaultCurrency = currency.USD

// Money is a non-negative amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency currency.Unit
}

// NewMoney validates amount, which must also fit in a float64 so it can be
// rendered as a JSON number. A zero unit falls back to DefaultCurrency.
func NewMoney(amount decimal.Decimal, unit currency.Unit) (Money, error) {
	if amount.IsNegative() {
		return Money{}, NewValidationError("Money amount cannot be negative")
	}
	if f := amount.InexactFloat64(); math.IsInf(f, 0) {
		return Money{}, NewValidationError("Money amount is too large")
	}
	if unit == (currency.Unit{}) {
		unit = DefaultCurrency
	}
	return Money{amount: amount, currency: unit}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() currency.Unit { return m.currency }

// Float64 returns the amount as a float for JSON responses.
func (m Money) Float64() float64 { return m.amount.InexactFloat64() }

// Equals compares amounts numerically, so 1.5 equals 1.50.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(2))
}
