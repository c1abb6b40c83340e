package core

import (
	"math"

	"github.com/shopspring/decimal"
)

const daysPerYear = 365

// Investment is a fixed-income position. Returns are computed on read.
type Investment struct {
	ID         int64
	Name       string
	Principal  Money
	AnnualRate decimal.NullDecimal // percent per year, e.g. 12 for 12%
	StartDate  Date                // optional
	Notes      string
}

func (i Investment) Validate() error {
	if err := validateName(i.Name); err != nil {
		return err
	}
	if err := i.Principal.Validate(); err != nil {
		return err
	}
	if i.AnnualRate.Valid && i.AnnualRate.Decimal.IsNegative() {
		return ErrInvalidInvestmentRate
	}
	if !i.StartDate.IsEmpty() {
		if err := i.StartDate.Validate(); err != nil {
			return err
		}
	}
	if len(i.Notes) > maxNoteLength {
		return ErrNoteLong
	}
	return nil
}

// Returns computes the accrued gain at asOf with daily compounding:
// principal * (1 + rate/100/365)^days - principal. It is zero without a rate,
// without a start date, or before the start date.
func (i Investment) Returns(asOf Date) Money {
	if !i.AnnualRate.Valid || i.AnnualRate.Decimal.IsZero() || i.StartDate.IsEmpty() {
		return Money{}
	}
	days := asOf.DaysSince(i.StartDate)
	if days <= 0 {
		return Money{}
	}
	dailyRate := i.AnnualRate.Decimal.InexactFloat64() / 100 / daysPerYear
	growth := math.Pow(1+dailyRate, float64(days)) - 1
	gain := i.Principal.Decimal().Mul(decimal.NewFromFloat(growth))
	return MoneyFromDecimal(gain)
}
