package storage

import (
	"context"
	"fmt"
	"log/slog"

	"ledger/internal/core"
	applog "ledger/internal/log"
)

func toCoreTransaction(t Transaction) (core.Transaction, error) {
	date, err := core.ParseDate(t.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d date: %w", t.ID, err)
	}
	return core.Transaction{
		ID:       t.ID,
		Kind:     core.TransactionKind(t.Kind),
		Amount:   core.Money{Cents: t.AmountCents},
		Date:     date,
		Category: core.CategoryRef{ID: t.CategoryID.Int64, Label: t.CategoryLabel},
		Note:     t.Note,
		Planned:  t.Planned != 0,

		AccountID: t.AccountID.Int64,
		CardID:    t.CardID.Int64,

		InstallmentIndex: int(t.InstallmentIndex),
		InstallmentCount: int(t.InstallmentCount),
		InstallmentGroup: t.InstallmentGroup.String,

		Status:    core.TransactionStatus(t.Status),
		CreatedAt: parseTimestamp(t.CreatedAt),
	}, nil
}

func toCoreTransactions(rows []Transaction) ([]core.Transaction, error) {
	txs := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := toCoreTransaction(row)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// CreateTransaction inserts one row. Callers writing several rows for one
// logical operation wrap the calls in InTx.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	row, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		Kind:             string(t.Kind),
		AmountCents:      t.Amount.Cents,
		Date:             t.Date.String(),
		CategoryLabel:    t.Category.Label,
		Note:             t.Note,
		AccountID:        nullInt64(t.AccountID),
		CreatedAt:        formatTimestamp(t.CreatedAt),
		CardID:           nullInt64(t.CardID),
		InstallmentIndex: int64(t.InstallmentIndex),
		InstallmentCount: int64(t.InstallmentCount),
		InstallmentGroup: nullString(t.InstallmentGroup),
		Planned:          boolToInt(t.Planned),
		Status:           string(t.Status),
		CategoryID:       nullInt64(t.Category.ID),
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	logFor(ctx).Fields(ctx, slog.LevelDebug, "Transaction saved to SQLite", applog.NewFields().
		WithOperation(applog.OpCreate).
		WithEntry(row.ID, row.Kind, row.AmountCents, row.Date))

	return toCoreTransaction(row)
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if err != nil {
		return core.Transaction{}, wrapGet(err, "transaction", id)
	}
	return toCoreTransaction(row)
}

// UpdateTransaction rewrites the mutable columns of one row. Installment
// metadata is fixed at creation and never rewritten.
func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	row, err := r.queries.UpdateTransaction(ctx, UpdateTransactionParams{
		Kind:          string(t.Kind),
		AmountCents:   t.Amount.Cents,
		Date:          t.Date.String(),
		CategoryLabel: t.Category.Label,
		Note:          t.Note,
		AccountID:     nullInt64(t.AccountID),
		CardID:        nullInt64(t.CardID),
		Planned:       boolToInt(t.Planned),
		Status:        string(t.Status),
		CategoryID:    nullInt64(t.Category.ID),
		ID:            t.ID,
	})
	if err != nil {
		return core.Transaction{}, wrapGet(err, "transaction", t.ID)
	}
	return toCoreTransaction(row)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if n == 0 {
		return notFound("transaction", id)
	}
	return nil
}

// ListRealizedBetween returns non-planned rows dated in [from, to], newest first.
func (r *SQLiteRepository) ListRealizedBetween(ctx context.Context, from, to core.Date) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsBetween(ctx, ListTransactionsBetweenParams{
		Planned: 0, FromDate: from.String(), ToDate: to.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions %s..%s: %w", from, to, err)
	}
	return toCoreTransactions(rows)
}

// ListPlannedBetween returns budget rows dated in [from, to], newest first.
func (r *SQLiteRepository) ListPlannedBetween(ctx context.Context, from, to core.Date) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsBetween(ctx, ListTransactionsBetweenParams{
		Planned: 1, FromDate: from.String(), ToDate: to.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list planned transactions %s..%s: %w", from, to, err)
	}
	return toCoreTransactions(rows)
}

// ListCardTransactionsBetween returns the realized rows charged to a card in
// [from, to], oldest first.
func (r *SQLiteRepository) ListCardTransactionsBetween(ctx context.Context, cardID int64, from, to core.Date) ([]core.Transaction, error) {
	rows, err := r.queries.ListCardTransactionsBetween(ctx, ListCardTransactionsBetweenParams{
		CardID: cardID, FromDate: from.String(), ToDate: to.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list card %d transactions: %w", cardID, err)
	}
	return toCoreTransactions(rows)
}

func (r *SQLiteRepository) ListInstallmentGroup(ctx context.Context, group string) ([]core.Transaction, error) {
	rows, err := r.queries.ListInstallmentGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("list installment group %s: %w", group, err)
	}
	return toCoreTransactions(rows)
}

// SumBetween totals the amounts of one kind dated in [from, to], restricted to
// planned or realized rows.
func (r *SQLiteRepository) SumBetween(ctx context.Context, kind core.TransactionKind, planned bool, from, to core.Date) (core.Money, error) {
	total, err := r.queries.SumTransactionsBetween(ctx, SumTransactionsBetweenParams{
		Kind: string(kind), Planned: boolToInt(planned), FromDate: from.String(), ToDate: to.String(),
	})
	if err != nil {
		return core.Money{}, fmt.Errorf("sum %s transactions %s..%s: %w", kind, from, to, err)
	}
	return core.Money{Cents: total}, nil
}

// DailyExpenseTotals returns realized expense per day in [from, to]. Days
// without spend are absent from the map.
func (r *SQLiteRepository) DailyExpenseTotals(ctx context.Context, from, to core.Date) (map[core.Date]core.Money, error) {
	rows, err := r.queries.SumRealizedExpenseByDay(ctx, SumRealizedExpenseByDayParams{
		FromDate: from.String(), ToDate: to.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("daily expense totals %s..%s: %w", from, to, err)
	}
	totals := make(map[core.Date]core.Money, len(rows))
	for _, row := range rows {
		d, err := core.ParseDate(row.Date)
		if err != nil {
			return nil, err
		}
		totals[d] = core.Money{Cents: row.TotalCents}
	}
	return totals, nil
}
