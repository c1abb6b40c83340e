package storage

import (
	"context"
)

const cardColumns = `id, name, description, credit_limit_cents, closing_day, due_day`

const createCard = `-- name: CreateCard :one
INSERT INTO cards (name, description, credit_limit_cents, closing_day, due_day)
VALUES (?, ?, ?, ?, ?)
RETURNING ` + cardColumns

type CreateCardParams struct {
	Name             string
	Description      string
	CreditLimitCents int64
	ClosingDay       int64
	DueDay           int64
}

func (q *Queries) CreateCard(ctx context.Context, arg CreateCardParams) (Card, error) {
	row := q.db.QueryRowContext(ctx, createCard,
		arg.Name, arg.Description, arg.CreditLimitCents, arg.ClosingDay, arg.DueDay)
	var i Card
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.CreditLimitCents, &i.ClosingDay, &i.DueDay)
	return i, err
}

const getCard = `-- name: GetCard :one
SELECT ` + cardColumns + ` FROM cards WHERE id = ?`

func (q *Queries) GetCard(ctx context.Context, id int64) (Card, error) {
	row := q.db.QueryRowContext(ctx, getCard, id)
	var i Card
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.CreditLimitCents, &i.ClosingDay, &i.DueDay)
	return i, err
}

const listCards = `-- name: ListCards :many
SELECT ` + cardColumns + ` FROM cards ORDER BY name, id`

func (q *Queries) ListCards(ctx context.Context) ([]Card, error) {
	rows, err := q.db.QueryContext(ctx, listCards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Card
	for rows.Next() {
		var i Card
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.CreditLimitCents, &i.ClosingDay, &i.DueDay); err != nil {
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

const updateCard = `-- name: UpdateCard :one
UPDATE cards
SET name = ?, description = ?, credit_limit_cents = ?, closing_day = ?, due_day = ?
WHERE id = ?
RETURNING ` + cardColumns

type UpdateCardParams struct {
	Name             string
	Description      string
	CreditLimitCents int64
	ClosingDay       int64
	DueDay           int64
	ID               int64
}

func (q *Queries) UpdateCard(ctx context.Context, arg UpdateCardParams) (Card, error) {
	row := q.db.QueryRowContext(ctx, updateCard,
		arg.Name, arg.Description, arg.CreditLimitCents, arg.ClosingDay, arg.DueDay, arg.ID)
	var i Card
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.CreditLimitCents, &i.ClosingDay, &i.DueDay)
	return i, err
}

const deleteCard = `-- name: DeleteCard :execrows
DELETE FROM cards WHERE id = ?`

func (q *Queries) DeleteCard(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCard, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countCardTransactions = `-- name: CountCardTransactions :one
SELECT COUNT(*) FROM transactions WHERE card_id = ?`

func (q *Queries) CountCardTransactions(ctx context.Context, cardID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCardTransactions, cardID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
