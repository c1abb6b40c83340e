package storage

import (
	"context"
	"database/sql"
)

const investmentColumns = `id, name, principal_cents, annual_rate, start_date, notes`

const createInvestment = `-- name: CreateInvestment :one
INSERT INTO investments (name, principal_cents, annual_rate, start_date, notes)
VALUES (?, ?, ?, ?, ?)
RETURNING ` + investmentColumns

type CreateInvestmentParams struct {
	Name           string
	PrincipalCents int64
	AnnualRate     sql.NullString
	StartDate      sql.NullString
	Notes          string
}

func (q *Queries) CreateInvestment(ctx context.Context, arg CreateInvestmentParams) (Investment, error) {
	row := q.db.QueryRowContext(ctx, createInvestment,
		arg.Name, arg.PrincipalCents, arg.AnnualRate, arg.StartDate, arg.Notes)
	var i Investment
	err := row.Scan(&i.ID, &i.Name, &i.PrincipalCents, &i.AnnualRate, &i.StartDate, &i.Notes)
	return i, err
}

const getInvestment = `-- name: GetInvestment :one
SELECT ` + investmentColumns + ` FROM investments WHERE id = ?`

func (q *Queries) GetInvestment(ctx context.Context, id int64) (Investment, error) {
	row := q.db.QueryRowContext(ctx, getInvestment, id)
	var i Investment
	err := row.Scan(&i.ID, &i.Name, &i.PrincipalCents, &i.AnnualRate, &i.StartDate, &i.Notes)
	return i, err
}

const listInvestments = `-- name: ListInvestments :many
SELECT ` + investmentColumns + ` FROM investments ORDER BY name, id`

func (q *Queries) ListInvestments(ctx context.Context) ([]Investment, error) {
	rows, err := q.db.QueryContext(ctx, listInvestments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Investment
	for rows.Next() {
		var i Investment
		if err := rows.Scan(&i.ID, &i.Name, &i.PrincipalCents, &i.AnnualRate, &i.StartDate, &i.Notes); err != nil {
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

const updateInvestment = `-- name: UpdateInvestment :one
UPDATE investments
SET name = ?, principal_cents = ?, annual_rate = ?, start_date = ?, notes = ?
WHERE id = ?
RETURNING ` + investmentColumns

type UpdateInvestmentParams struct {
	Name           string
	PrincipalCents int64
	AnnualRate     sql.NullString
	StartDate      sql.NullString
	Notes          string
	ID             int64
}

func (q *Queries) UpdateInvestment(ctx context.Context, arg UpdateInvestmentParams) (Investment, error) {
	row := q.db.QueryRowContext(ctx, updateInvestment,
		arg.Name, arg.PrincipalCents, arg.AnnualRate, arg.StartDate, arg.Notes, arg.ID)
	var i Investment
	err := row.Scan(&i.ID, &i.Name, &i.PrincipalCents, &i.AnnualRate, &i.StartDate, &i.Notes)
	return i, err
}

const deleteInvestment = `-- name: DeleteInvestment :execrows
DELETE FROM investments WHERE id = ?`

func (q *Queries) DeleteInvestment(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteInvestment, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
