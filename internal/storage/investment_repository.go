package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

func toCoreInvestment(i Investment) (core.Investment, error) {
	start, err := parseNullDate(i.StartDate)
	if err != nil {
		return core.Investment{}, fmt.Errorf("investment %d start date: %w", i.ID, err)
	}
	inv := core.Investment{
		ID:        i.ID,
		Name:      i.Name,
		Principal: core.Money{Cents: i.PrincipalCents},
		StartDate: start,
		Notes:     i.Notes,
	}
	if i.AnnualRate.Valid && i.AnnualRate.String != "" {
		rate, err := decimal.NewFromString(i.AnnualRate.String)
		if err != nil {
			return core.Investment{}, fmt.Errorf("investment %d annual rate: %w", i.ID, err)
		}
		inv.AnnualRate = decimal.NewNullDecimal(rate)
	}
	return inv, nil
}

func nullRate(rate decimal.NullDecimal) sql.NullString {
	if !rate.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: rate.Decimal.String(), Valid: true}
}

func (r *SQLiteRepository) CreateInvestment(ctx context.Context, inv core.Investment) (core.Investment, error) {
	row, err := r.queries.CreateInvestment(ctx, CreateInvestmentParams{
		Name:           inv.Name,
		PrincipalCents: inv.Principal.Cents,
		AnnualRate:     nullRate(inv.AnnualRate),
		StartDate:      nullDate(inv.StartDate),
		Notes:          inv.Notes,
	})
	if err != nil {
		return core.Investment{}, fmt.Errorf("create investment: %w", err)
	}
	return toCoreInvestment(row)
}

func (r *SQLiteRepository) GetInvestment(ctx context.Context, id int64) (core.Investment, error) {
	row, err := r.queries.GetInvestment(ctx, id)
	if err != nil {
		return core.Investment{}, wrapGet(err, "investment", id)
	}
	return toCoreInvestment(row)
}

func (r *SQLiteRepository) ListInvestments(ctx context.Context) ([]core.Investment, error) {
	rows, err := r.queries.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	investments := make([]core.Investment, 0, len(rows))
	for _, row := range rows {
		inv, err := toCoreInvestment(row)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

func (r *SQLiteRepository) UpdateInvestment(ctx context.Context, inv core.Investment) (core.Investment, error) {
	row, err := r.queries.UpdateInvestment(ctx, UpdateInvestmentParams{
		Name:           inv.Name,
		PrincipalCents: inv.Principal.Cents,
		AnnualRate:     nullRate(inv.AnnualRate),
		StartDate:      nullDate(inv.StartDate),
		Notes:          inv.Notes,
		ID:             inv.ID,
	})
	if err != nil {
		return core.Investment{}, wrapGet(err, "investment", inv.ID)
	}
	return toCoreInvestment(row)
}

func (r *SQLiteRepository) DeleteInvestment(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteInvestment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete investment %d: %w", id, err)
	}
	if n == 0 {
		return notFound("investment", id)
	}
	return nil
}
