package storage

import (
	"context"
	"fmt"

	"ledger/internal/core"
)

func toCoreCard(c Card) core.Card {
	return core.Card{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreditLimit: core.Money{Cents: c.CreditLimitCents},
		ClosingDay:  int(c.ClosingDay),
		DueDay:      int(c.DueDay),
	}
}

func (r *SQLiteRepository) CreateCard(ctx context.Context, c core.Card) (core.Card, error) {
	row, err := r.queries.CreateCard(ctx, CreateCardParams{
		Name:             c.Name,
		Description:      c.Description,
		CreditLimitCents: c.CreditLimit.Cents,
		ClosingDay:       int64(c.ClosingDay),
		DueDay:           int64(c.DueDay),
	})
	if err != nil {
		return core.Card{}, fmt.Errorf("create card: %w", err)
	}
	return toCoreCard(row), nil
}

func (r *SQLiteRepository) GetCard(ctx context.Context, id int64) (core.Card, error) {
	row, err := r.queries.GetCard(ctx, id)
	if err != nil {
		return core.Card{}, wrapGet(err, "card", id)
	}
	return toCoreCard(row), nil
}

func (r *SQLiteRepository) ListCards(ctx context.Context) ([]core.Card, error) {
	rows, err := r.queries.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	cards := make([]core.Card, len(rows))
	for i, row := range rows {
		cards[i] = toCoreCard(row)
	}
	return cards, nil
}

func (r *SQLiteRepository) UpdateCard(ctx context.Context, c core.Card) (core.Card, error) {
	row, err := r.queries.UpdateCard(ctx, UpdateCardParams{
		Name:             c.Name,
		Description:      c.Description,
		CreditLimitCents: c.CreditLimit.Cents,
		ClosingDay:       int64(c.ClosingDay),
		DueDay:           int64(c.DueDay),
		ID:               c.ID,
	})
	if err != nil {
		return core.Card{}, wrapGet(err, "card", c.ID)
	}
	return toCoreCard(row), nil
}

func (r *SQLiteRepository) DeleteCard(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteCard(ctx, id)
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	if n == 0 {
		return notFound("card", id)
	}
	return nil
}

func (r *SQLiteRepository) CountCardTransactions(ctx context.Context, id int64) (int64, error) {
	n, err := r.queries.CountCardTransactions(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count card %d transactions: %w", id, err)
	}
	return n, nil
}
