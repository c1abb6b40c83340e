package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// Catalog manages the reference data transactions point at: accounts, cards
// and categories.
type Catalog struct {
	store  *storage.SQLiteRepository
	now    func() time.Time
	logger *applog.Logger
}

func NewCatalog(store *storage.SQLiteRepository, now func() time.Time) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{
		store:  store,
		now:    now,
		logger: applog.Default().WithComponent(applog.ComponentCatalog),
	}
}

func (c *Catalog) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = c.now()
	}
	created, err := c.store.CreateAccount(ctx, a)
	if err != nil {
		return core.Account{}, err
	}
	c.logged(ctx, "Account created", applog.OpCreate, created.ID)
	return created, nil
}

// UpdateAccount changes name and opening balance. An empty kind keeps the
// stored one; any other kind change is rejected.
func (c *Catalog) UpdateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	var updated core.Account
	err := c.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		current, err := tx.GetAccount(ctx, a.ID)
		if err != nil {
			return err
		}
		if a.Kind != "" && a.Kind != current.Kind {
			return core.ErrAccountKindImmutable
		}
		a.Kind = current.Kind
		a.Name = strings.TrimSpace(a.Name)
		if err := a.Validate(); err != nil {
			return err
		}
		updated, err = tx.UpdateAccount(ctx, a)
		return err
	})
	if err != nil {
		return core.Account{}, err
	}
	c.logged(ctx, "Account updated", applog.OpUpdate, updated.ID)
	return updated, nil
}

// DeleteAccount removes an account that no transaction references.
func (c *Catalog) DeleteAccount(ctx context.Context, id int64) error {
	err := c.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		if _, err := tx.GetAccount(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountAccountTransactions(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("account %d: %w (%d rows)", id, core.ErrInUse, n)
		}
		return tx.DeleteAccount(ctx, id)
	})
	if err != nil {
		return err
	}
	c.logged(ctx, "Account deleted", applog.OpDelete, id)
	return nil
}

func (c *Catalog) ListAccounts(ctx context.Context) ([]core.Account, error) {
	balances, err := c.store.ListAccountBalances(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]core.Account, len(balances))
	for i, b := range balances {
		accounts[i] = b.Account
	}
	return accounts, nil
}

func (c *Catalog) CreateCard(ctx context.Context, card core.Card) (core.Card, error) {
	card.Name = strings.TrimSpace(card.Name)
	if err := card.Validate(); err != nil {
		return core.Card{}, err
	}
	created, err := c.store.CreateCard(ctx, card)
	if err != nil {
		return core.Card{}, err
	}
	c.logged(ctx, "Card created", applog.OpCreate, created.ID)
	return created, nil
}

func (c *Catalog) UpdateCard(ctx context.Context, card core.Card) (core.Card, error) {
	card.Name = strings.TrimSpace(card.Name)
	if err := card.Validate(); err != nil {
		return core.Card{}, err
	}
	updated, err := c.store.UpdateCard(ctx, card)
	if err != nil {
		return core.Card{}, err
	}
	c.logged(ctx, "Card updated", applog.OpUpdate, updated.ID)
	return updated, nil
}

// DeleteCard removes a card that no transaction references.
func (c *Catalog) DeleteCard(ctx context.Context, id int64) error {
	err := c.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		if _, err := tx.GetCard(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountCardTransactions(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("card %d: %w (%d rows)", id, core.ErrInUse, n)
		}
		return tx.DeleteCard(ctx, id)
	})
	if err != nil {
		return err
	}
	c.logged(ctx, "Card deleted", applog.OpDelete, id)
	return nil
}

func (c *Catalog) ListCards(ctx context.Context) ([]core.Card, error) {
	return c.store.ListCards(ctx)
}

func (c *Catalog) CreateCategory(ctx context.Context, cat core.Category) (core.Category, error) {
	cat.Name = strings.TrimSpace(cat.Name)
	if err := cat.Validate(); err != nil {
		return core.Category{}, err
	}
	if cat.CreatedAt.IsZero() {
		cat.CreatedAt = c.now()
	}
	created, err := c.store.CreateCategory(ctx, cat)
	if err != nil {
		return core.Category{}, err
	}
	c.logged(ctx, "Category created", applog.OpCreate, created.ID)
	return created, nil
}

// UpdateCategory changes name, icon, color and permanence. The kind is fixed
// at creation.
func (c *Catalog) UpdateCategory(ctx context.Context, cat core.Category) (core.Category, error) {
	var updated core.Category
	err := c.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		current, err := tx.GetCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		if cat.Kind != "" && cat.Kind != current.Kind {
			return fmt.Errorf("%w: category kind cannot change", core.ErrInvalidKind)
		}
		cat.Kind = current.Kind
		cat.Name = strings.TrimSpace(cat.Name)
		if err := cat.Validate(); err != nil {
			return err
		}
		updated, err = tx.UpdateCategory(ctx, cat)
		return err
	})
	if err != nil {
		return core.Category{}, err
	}
	c.logged(ctx, "Category updated", applog.OpUpdate, updated.ID)
	return updated, nil
}

// ArchiveCategory hides a category from new entries. Transactions that already
// reference it are not modified.
func (c *Catalog) ArchiveCategory(ctx context.Context, id int64) error {
	if err := c.store.SetCategoryArchived(ctx, id, true); err != nil {
		return err
	}
	c.logged(ctx, "Category archived", applog.OpArchive, id)
	return nil
}

func (c *Catalog) UnarchiveCategory(ctx context.Context, id int64) error {
	if err := c.store.SetCategoryArchived(ctx, id, false); err != nil {
		return err
	}
	c.logged(ctx, "Category restored", applog.OpArchive, id)
	return nil
}

// ActiveCategories lists the categories of kind offered for new entries in ym:
// permanent ones always, the others only in the month they were created.
func (c *Catalog) ActiveCategories(ctx context.Context, kind core.TransactionKind, ym core.YearMonth) ([]core.Category, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	all, err := c.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	var active []core.Category
	for _, cat := range all {
		if cat.Kind == kind && cat.VisibleIn(ym) {
			active = append(active, cat)
		}
	}
	return active, nil
}

// ListCategories returns every category, archived ones included.
func (c *Catalog) ListCategories(ctx context.Context) ([]core.Category, error) {
	return c.store.ListCategories(ctx)
}

func (c *Catalog) logged(ctx context.Context, msg, op string, id int64) {
	c.logger.InfoContext(ctx, msg, applog.FieldOperation, op, applog.FieldID, id)
}
