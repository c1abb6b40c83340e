package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
)

func TestInvestmentService_ListWithReturns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bond, err := f.investing.Create(ctx, core.Investment{
		Name:       "Bond",
		Principal:  cents(100000),
		AnnualRate: decimal.NewNullDecimal(decimal.NewFromInt(12)),
		StartDate:  day(2024, 1, 1),
	})
	require.NoError(t, err)
	_, err = f.investing.Create(ctx, core.Investment{Name: "Cash reserve", Principal: cents(50000)})
	require.NoError(t, err)

	asOf := bond.StartDate.AddDays(365)
	list, err := f.investing.ListWithReturns(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Bond", list[0].Investment.Name)
	assert.InDelta(t, 12747, list[0].Returns.Cents, 1)
	assert.Equal(t, list[0].Investment.Principal.Add(list[0].Returns), list[0].Value)

	assert.Zero(t, list[1].Returns.Cents, "no rate means no returns")
	assert.Equal(t, cents(50000), list[1].Value)
}

func TestCalculateReturns_EdgeCases(t *testing.T) {
	rate := decimal.NewNullDecimal(decimal.NewFromInt(10))
	tests := []struct {
		name string
		inv  core.Investment
		asOf core.Date
	}{
		{"no start date", core.Investment{Principal: cents(1000), AnnualRate: rate}, day(2025, 1, 1)},
		{"same day", core.Investment{Principal: cents(1000), AnnualRate: rate, StartDate: day(2025, 1, 1)}, day(2025, 1, 1)},
		{"before start", core.Investment{Principal: cents(1000), AnnualRate: rate, StartDate: day(2025, 1, 1)}, day(2024, 12, 1)},
		{"zero rate", core.Investment{Principal: cents(1000), AnnualRate: decimal.NewNullDecimal(decimal.Zero), StartDate: day(2024, 1, 1)}, day(2025, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, CalculateReturns(tt.inv, tt.asOf).Cents)
		})
	}
}

func TestInvestmentService_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.investing.Create(ctx, core.Investment{Name: "", Principal: cents(100)})
	assert.ErrorIs(t, err, core.ErrEmptyName)
	_, err = f.investing.Create(ctx, core.Investment{Name: "Bad", Principal: cents(100), AnnualRate: decimal.NewNullDecimal(decimal.NewFromInt(-1))})
	assert.ErrorIs(t, err, core.ErrInvalidInvestmentRate)

	inv, err := f.investing.Create(ctx, core.Investment{Name: "CD", Principal: cents(100000), Notes: "bank"})
	require.NoError(t, err)

	inv.Principal = cents(120000)
	updated, err := f.investing.Update(ctx, inv)
	require.NoError(t, err)
	assert.Equal(t, cents(120000), updated.Principal)
	assert.Equal(t, "bank", updated.Notes)

	require.NoError(t, f.investing.Delete(ctx, inv.ID))
	assert.ErrorIs(t, f.investing.Delete(ctx, inv.ID), core.ErrNotFound)

	list, err := f.investing.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
