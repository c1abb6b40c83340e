package storage

import (
	"context"
)

const categoryColumns = `id, name, icon, color, kind, created_at, permanent, archived`

const createCategory = `-- name: CreateCategory :one
INSERT INTO categories (name, icon, color, kind, created_at, permanent, archived)
VALUES (?, ?, ?, ?, ?, ?, 0)
RETURNING ` + categoryColumns

type CreateCategoryParams struct {
	Name      string
	Icon      string
	Color     string
	Kind      string
	CreatedAt string
	Permanent int64
}

func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (Category, error) {
	row := q.db.QueryRowContext(ctx, createCategory,
		arg.Name, arg.Icon, arg.Color, arg.Kind, arg.CreatedAt, arg.Permanent)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Icon, &i.Color, &i.Kind, &i.CreatedAt, &i.Permanent, &i.Archived)
	return i, err
}

const getCategory = `-- name: GetCategory :one
SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`

func (q *Queries) GetCategory(ctx context.Context, id int64) (Category, error) {
	row := q.db.QueryRowContext(ctx, getCategory, id)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Icon, &i.Color, &i.Kind, &i.CreatedAt, &i.Permanent, &i.Archived)
	return i, err
}

const listCategories = `-- name: ListCategories :many
SELECT ` + categoryColumns + ` FROM categories ORDER BY kind, name, id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Name, &i.Icon, &i.Color, &i.Kind, &i.CreatedAt, &i.Permanent, &i.Archived); err != nil {
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

const updateCategory = `-- name: UpdateCategory :one
UPDATE categories SET name = ?, icon = ?, color = ?, permanent = ?
WHERE id = ?
RETURNING ` + categoryColumns

type UpdateCategoryParams struct {
	Name      string
	Icon      string
	Color     string
	Permanent int64
	ID        int64
}

func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) (Category, error) {
	row := q.db.QueryRowContext(ctx, updateCategory, arg.Name, arg.Icon, arg.Color, arg.Permanent, arg.ID)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Icon, &i.Color, &i.Kind, &i.CreatedAt, &i.Permanent, &i.Archived)
	return i, err
}

const setCategoryArchived = `-- name: SetCategoryArchived :execrows
UPDATE categories SET archived = ? WHERE id = ?`

type SetCategoryArchivedParams struct {
	Archived int64
	ID       int64
}

func (q *Queries) SetCategoryArchived(ctx context.Context, arg SetCategoryArchivedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setCategoryArchived, arg.Archived, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
