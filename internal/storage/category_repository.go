package storage

import (
	"context"
	"fmt"

	"ledger/internal/core"
)

func toCoreCategory(c Category) core.Category {
	return core.Category{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Kind:      core.TransactionKind(c.Kind),
		Permanent: c.Permanent != 0,
		Archived:  c.Archived != 0,
		CreatedAt: parseTimestamp(c.CreatedAt),
	}
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	row, err := r.queries.CreateCategory(ctx, CreateCategoryParams{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Kind:      string(c.Kind),
		CreatedAt: formatTimestamp(c.CreatedAt),
		Permanent: boolToInt(c.Permanent),
	})
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return toCoreCategory(row), nil
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, id int64) (core.Category, error) {
	row, err := r.queries.GetCategory(ctx, id)
	if err != nil {
		return core.Category{}, wrapGet(err, "category", id)
	}
	return toCoreCategory(row), nil
}

// ListCategories returns every category, archived ones included.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]core.Category, len(rows))
	for i, row := range rows {
		categories[i] = toCoreCategory(row)
	}
	return categories, nil
}

// CategoryCatalog indexes every category by id for CategoryRef resolution.
func (r *SQLiteRepository) CategoryCatalog(ctx context.Context) (map[int64]core.Category, error) {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(map[int64]core.Category, len(categories))
	for _, c := range categories {
		catalog[c.ID] = c
	}
	return catalog, nil
}

// UpdateCategory persists name, icon, color and permanence. Kind and the
// archived flag are not touched.
func (r *SQLiteRepository) UpdateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	row, err := r.queries.UpdateCategory(ctx, UpdateCategoryParams{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Permanent: boolToInt(c.Permanent),
		ID:        c.ID,
	})
	if err != nil {
		return core.Category{}, wrapGet(err, "category", c.ID)
	}
	return toCoreCategory(row), nil
}

func (r *SQLiteRepository) SetCategoryArchived(ctx context.Context, id int64, archived bool) error {
	n, err := r.queries.SetCategoryArchived(ctx, SetCategoryArchivedParams{Archived: boolToInt(archived), ID: id})
	if err != nil {
		return fmt.Errorf("archive category %d: %w", id, err)
	}
	if n == 0 {
		return notFound("category", id)
	}
	return nil
}
