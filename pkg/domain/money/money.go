// Package money provides the monetary value object used across the ledger.
//
// It represents amounts of the bank's single operating currency as an
// integer number of cents.
// Invariants:
//   - Arithmetic never loses precision; parsing rejects sub-cent input.
//   - Rendering always uses two decimal places.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when operator input cannot be read as a
// monetary amount.
var ErrInvalidAmount = fmt.Errorf("invalid amount")

var hundred = decimal.NewFromInt(100)

// Money is an amount of the bank's operating currency, held in cents.
// The zero value is usable and means zero cents.
type Money struct {
	cents int64
}

// Zero returns a zero amount.
func Zero() Money { return Money{} }

// FromCents creates a Money from a raw cent count. It is intended for
// configuration defaults and test fixtures.
func FromCents(cents int64) Money { return Money{cents: cents} }

// Parse converts operator input such as "150", "150.00" or "1.5" into Money.
// Input with more than two decimal places, or that is not a number at all,
// fails with ErrInvalidAmount. Negative and zero amounts parse fine; whether
// they are acceptable is decided at transaction execution, not here.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return Money{}, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}
	return Money{cents: cents.IntPart()}, nil
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 { return m.cents }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool { return m.cents < 0 }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.cents == 0 }

// Add returns m + other.
func (m Money) Add(other Money) Money { return Money{cents: m.cents + other.cents} }

// Sub returns m - other.
func (m Money) Sub(other Money) Money { return Money{cents: m.cents - other.cents} }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool { return m.cents > other.cents }

// Equals reports whether m and other are the same amount.
func (m Money) Equals(other Money) bool { return m.cents == other.cents }

// String renders the amount with two decimal places, e.g. "1234.56".
func (m Money) String() string {
	return decimal.New(m.cents, -2).StringFixed(2)
}
