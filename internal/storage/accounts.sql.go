package storage

import (
	"context"
)

const accountColumns = `id, name, kind, opening_balance_cents, created_at`

const createAccount = `-- name: CreateAccount :one
INSERT INTO accounts (name, kind, opening_balance_cents, created_at)
VALUES (?, ?, ?, ?)
RETURNING ` + accountColumns

type CreateAccountParams struct {
	Name                string
	Kind                string
	OpeningBalanceCents int64
	CreatedAt           string
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) (Account, error) {
	row := q.db.QueryRowContext(ctx, createAccount, arg.Name, arg.Kind, arg.OpeningBalanceCents, arg.CreatedAt)
	var i Account
	err := row.Scan(&i.ID, &i.Name, &i.Kind, &i.OpeningBalanceCents, &i.CreatedAt)
	return i, err
}

const getAccount = `-- name: GetAccount :one
SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`

func (q *Queries) GetAccount(ctx context.Context, id int64) (Account, error) {
	row := q.db.QueryRowContext(ctx, getAccount, id)
	var i Account
	err := row.Scan(&i.ID, &i.Name, &i.Kind, &i.OpeningBalanceCents, &i.CreatedAt)
	return i, err
}

const updateAccount = `-- name: UpdateAccount :one
UPDATE accounts SET name = ?, opening_balance_cents = ?
WHERE id = ?
RETURNING ` + accountColumns

type UpdateAccountParams struct {
	Name                string
	OpeningBalanceCents int64
	ID                  int64
}

func (q *Queries) UpdateAccount(ctx context.Context, arg UpdateAccountParams) (Account, error) {
	row := q.db.QueryRowContext(ctx, updateAccount, arg.Name, arg.OpeningBalanceCents, arg.ID)
	var i Account
	err := row.Scan(&i.ID, &i.Name, &i.Kind, &i.OpeningBalanceCents, &i.CreatedAt)
	return i, err
}

const deleteAccount = `-- name: DeleteAccount :execrows
DELETE FROM accounts WHERE id = ?`

func (q *Queries) DeleteAccount(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAccount, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listAccountsWithSum = `-- name: ListAccountsWithSum :many
SELECT a.id, a.name, a.kind, a.opening_balance_cents, a.created_at,
       CAST(COALESCE(SUM(CASE WHEN t.kind = 'income' THEN t.amount_cents ELSE -t.amount_cents END), 0) AS INTEGER)
FROM accounts a
LEFT JOIN transactions t ON t.account_id = a.id AND t.planned = 0
GROUP BY a.id
ORDER BY a.name, a.id`

// ListAccountsWithSum returns every account with the signed sum of its
// realized transactions.
func (q *Queries) ListAccountsWithSum(ctx context.Context) ([]AccountWithSum, error) {
	rows, err := q.db.QueryContext(ctx, listAccountsWithSum)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AccountWithSum
	for rows.Next() {
		var i AccountWithSum
		if err := rows.Scan(&i.ID, &i.Name, &i.Kind, &i.OpeningBalanceCents, &i.CreatedAt, &i.RealizedCents); err != nil {
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

const sumAccountRealized = `-- name: SumAccountRealized :one
SELECT CAST(COALESCE(SUM(CASE WHEN kind = 'income' THEN amount_cents ELSE -amount_cents END), 0) AS INTEGER)
FROM transactions
WHERE account_id = ? AND planned = 0`

func (q *Queries) SumAccountRealized(ctx context.Context, accountID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, sumAccountRealized, accountID)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const countAccountTransactions = `-- name: CountAccountTransactions :one
SELECT COUNT(*) FROM transactions WHERE account_id = ?`

func (q *Queries) CountAccountTransactions(ctx context.Context, accountID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAccountTransactions, accountID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
