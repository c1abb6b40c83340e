package storage

import (
	"context"
	"database/sql"
)

const transactionColumns = `id, kind, amount_cents, date, category_label, note, account_id, created_at,
       card_id, installment_index, installment_count, installment_group, planned, status, category_id`

func scanTransaction(row interface{ Scan(...interface{}) error }) (Transaction, error) {
	var i Transaction
	err := row.Scan(
		&i.ID, &i.Kind, &i.AmountCents, &i.Date, &i.CategoryLabel, &i.Note, &i.AccountID, &i.CreatedAt,
		&i.CardID, &i.InstallmentIndex, &i.InstallmentCount, &i.InstallmentGroup, &i.Planned, &i.Status, &i.CategoryID,
	)
	return i, err
}

func (q *Queries) listTransactions(ctx context.Context, query string, args ...interface{}) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		i, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createTransaction = `-- name: CreateTransaction :one
INSERT INTO transactions (
    kind, amount_cents, date, category_label, note, account_id, created_at,
    card_id, installment_index, installment_count, installment_group, planned, status, category_id
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + transactionColumns

type CreateTransactionParams struct {
	Kind             string
	AmountCents      int64
	Date             string
	CategoryLabel    string
	Note             string
	AccountID        sql.NullInt64
	CreatedAt        string
	CardID           sql.NullInt64
	InstallmentIndex int64
	InstallmentCount int64
	InstallmentGroup sql.NullString
	Planned          int64
	Status           string
	CategoryID       sql.NullInt64
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, createTransaction,
		arg.Kind, arg.AmountCents, arg.Date, arg.CategoryLabel, arg.Note, arg.AccountID, arg.CreatedAt,
		arg.CardID, arg.InstallmentIndex, arg.InstallmentCount, arg.InstallmentGroup, arg.Planned, arg.Status, arg.CategoryID,
	)
	return scanTransaction(row)
}

const getTransaction = `-- name: GetTransaction :one
SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

func (q *Queries) GetTransaction(ctx context.Context, id int64) (Transaction, error) {
	return scanTransaction(q.db.QueryRowContext(ctx, getTransaction, id))
}

const updateTransaction = `-- name: UpdateTransaction :one
UPDATE transactions
SET kind = ?, amount_cents = ?, date = ?, category_label = ?, note = ?, account_id = ?,
    card_id = ?, planned = ?, status = ?, category_id = ?
WHERE id = ?
RETURNING ` + transactionColumns

type UpdateTransactionParams struct {
	Kind          string
	AmountCents   int64
	Date          string
	CategoryLabel string
	Note          string
	AccountID     sql.NullInt64
	CardID        sql.NullInt64
	Planned       int64
	Status        string
	CategoryID    sql.NullInt64
	ID            int64
}

func (q *Queries) UpdateTransaction(ctx context.Context, arg UpdateTransactionParams) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, updateTransaction,
		arg.Kind, arg.AmountCents, arg.Date, arg.CategoryLabel, arg.Note, arg.AccountID,
		arg.CardID, arg.Planned, arg.Status, arg.CategoryID, arg.ID,
	)
	return scanTransaction(row)
}

const deleteTransaction = `-- name: DeleteTransaction :execrows
DELETE FROM transactions WHERE id = ?`

func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTransaction, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listTransactionsBetween = `-- name: ListTransactionsBetween :many
SELECT ` + transactionColumns + `
FROM transactions
WHERE planned = ? AND date BETWEEN ? AND ?
ORDER BY date DESC, id DESC`

type ListTransactionsBetweenParams struct {
	Planned  int64
	FromDate string
	ToDate   string
}

// ListTransactionsBetween returns realized (Planned = 0) or planned
// (Planned = 1) rows dated in [FromDate, ToDate].
func (q *Queries) ListTransactionsBetween(ctx context.Context, arg ListTransactionsBetweenParams) ([]Transaction, error) {
	return q.listTransactions(ctx, listTransactionsBetween, arg.Planned, arg.FromDate, arg.ToDate)
}

const listCardTransactionsBetween = `-- name: ListCardTransactionsBetween :many
SELECT ` + transactionColumns + `
FROM transactions
WHERE card_id = ? AND planned = 0 AND date BETWEEN ? AND ?
ORDER BY date, id`

type ListCardTransactionsBetweenParams struct {
	CardID   int64
	FromDate string
	ToDate   string
}

func (q *Queries) ListCardTransactionsBetween(ctx context.Context, arg ListCardTransactionsBetweenParams) ([]Transaction, error) {
	return q.listTransactions(ctx, listCardTransactionsBetween, arg.CardID, arg.FromDate, arg.ToDate)
}

const listInstallmentGroup = `-- name: ListInstallmentGroup :many
SELECT ` + transactionColumns + `
FROM transactions
WHERE installment_group = ?
ORDER BY installment_index`

func (q *Queries) ListInstallmentGroup(ctx context.Context, group string) ([]Transaction, error) {
	return q.listTransactions(ctx, listInstallmentGroup, group)
}

const sumTransactionsBetween = `-- name: SumTransactionsBetween :one
SELECT CAST(COALESCE(SUM(amount_cents), 0) AS INTEGER)
FROM transactions
WHERE kind = ? AND planned = ? AND date BETWEEN ? AND ?`

type SumTransactionsBetweenParams struct {
	Kind     string
	Planned  int64
	FromDate string
	ToDate   string
}

func (q *Queries) SumTransactionsBetween(ctx context.Context, arg SumTransactionsBetweenParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, sumTransactionsBetween, arg.Kind, arg.Planned, arg.FromDate, arg.ToDate)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const sumRealizedExpenseByDay = `-- name: SumRealizedExpenseByDay :many
SELECT date, CAST(SUM(amount_cents) AS INTEGER)
FROM transactions
WHERE kind = 'expense' AND planned = 0 AND date BETWEEN ? AND ?
GROUP BY date
ORDER BY date`

type SumRealizedExpenseByDayParams struct {
	FromDate string
	ToDate   string
}

func (q *Queries) SumRealizedExpenseByDay(ctx context.Context, arg SumRealizedExpenseByDayParams) ([]DailyTotal, error) {
	rows, err := q.db.QueryContext(ctx, sumRealizedExpenseByDay, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DailyTotal
	for rows.Next() {
		var i DailyTotal
		if err := rows.Scan(&i.Date, &i.TotalCents); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
