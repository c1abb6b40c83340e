// Package core holds the ledger domain types, money and calendar dates.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsPerUnit is the number of cents in one currency unit.
const CentsPerUnit = 100

var maxAmount = decimal.NewFromInt(math.MaxInt64 / CentsPerUnit)

// Money is an amount in the single implicit local currency, held in cents.
type Money struct {
	Cents int64
}

// ParseAmount parses a strictly positive amount such as "12.34" or "12,34",
// rounding half away from zero to the cent. Signs, and values that round to
// zero, are rejected.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	m, err := parseAmount(s)
	if err != nil {
		return Money{}, err
	}
	if m.Cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

// ParseSignedAmount parses a possibly negative decimal string (dot or comma
// separator) into Money, rounding half away from zero to the cent. Zero is
// accepted; it is used for opening balances and credit limits.
func ParseSignedAmount(s string) (Money, error) {
	return parseAmount(strings.TrimSpace(s))
}

func parseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || strings.ContainsAny(s, "eE") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Abs().GreaterThan(maxAmount) {
		return Money{}, ErrInvalidAmount
	}
	return MoneyFromDecimal(d), nil
}

// MoneyFromDecimal rounds d to the cent.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Cents: d.Round(2).Shift(2).IntPart()}
}

// Decimal returns the amount as a decimal in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Euros returns the value as a float64 for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Euros() float64 {
	return float64(m.Cents) / CentsPerUnit
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }
func (m Money) Neg() Money        { return Money{Cents: -m.Cents} }
func (m Money) IsZero() bool      { return m.Cents == 0 }

// String formats the amount with two decimals, e.g. "-12.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
