package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// Journal records and edits transactions. Every multi-row write runs inside a
// single store transaction.
type Journal struct {
	store  *storage.SQLiteRepository
	now    func() time.Time
	logger *applog.Logger
}

func NewJournal(store *storage.SQLiteRepository, now func() time.Time) *Journal {
	if now == nil {
		now = time.Now
	}
	return &Journal{
		store:  store,
		now:    now,
		logger: applog.Default().WithComponent(applog.ComponentJournal),
	}
}

// CreateTransaction validates entry and persists it. An entry with
// InstallmentCount > 1 expands into one row per installment sharing a group id,
// each carrying entry.Amount and dated one month after the previous one.
func (j *Journal) CreateTransaction(ctx context.Context, entry core.Transaction) ([]core.Transaction, error) {
	if entry.InstallmentCount == 0 {
		entry.InstallmentCount = 1
	}
	entry.InstallmentIndex = 1
	entry.InstallmentGroup = ""
	if entry.Status == "" {
		entry.Status = defaultStatus(entry.Planned)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = j.now()
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	var group string
	if entry.InstallmentCount > 1 {
		group = uuid.NewString()
	}

	created := make([]core.Transaction, 0, entry.InstallmentCount)
	err := j.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		if err := checkReferences(ctx, tx, entry, true); err != nil {
			return err
		}
		for i := 1; i <= entry.InstallmentCount; i++ {
			row := entry
			row.InstallmentIndex = i
			row.InstallmentGroup = group
			row.Date = entry.Date.AddMonthsClamped(i - 1)
			saved, err := tx.CreateTransaction(ctx, row)
			if err != nil {
				return err
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	j.logger.Fields(ctx, slog.LevelInfo, "Transaction recorded", applog.NewFields().
		WithOperation(applog.OpCreate).
		WithEntry(created[0].ID, string(entry.Kind), entry.Amount.Cents, entry.Date.String()).
		With(applog.FieldCount, len(created)).
		With(applog.FieldGroup, group).
		With(applog.FieldCategoryID, entry.Category.ID))

	return created, nil
}

// UpdateTransaction merges patch into one row. Sibling installments are never
// touched.
func (j *Journal) UpdateTransaction(ctx context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error) {
	var updated core.Transaction
	err := j.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		current, err := tx.GetTransaction(ctx, id)
		if err != nil {
			return err
		}
		next := patch.Apply(current)
		if err := next.Validate(); err != nil {
			return err
		}
		categoryChanged := patch.Category != nil && *patch.Category != current.Category
		if err := checkReferences(ctx, tx, next, categoryChanged); err != nil {
			return err
		}
		updated, err = tx.UpdateTransaction(ctx, next)
		return err
	})
	if err != nil {
		return core.Transaction{}, err
	}

	j.logger.InfoContext(ctx, "Transaction updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldID, updated.ID)
	return updated, nil
}

// DeleteTransaction removes exactly one row.
func (j *Journal) DeleteTransaction(ctx context.Context, id int64) error {
	if err := j.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	j.logger.InfoContext(ctx, "Transaction deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldID, id)
	return nil
}

// PayInvoice settles part or all of a card invoice from an account: an expense
// on the account and a matching income on the card, both dated today.
func (j *Journal) PayInvoice(ctx context.Context, cardID, accountID int64, amount core.Money) (expense, income core.Transaction, err error) {
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, core.Transaction{}, err
	}

	now := j.now()
	base := core.Transaction{
		Amount:           amount,
		Date:             core.DateOf(now),
		Category:         core.CategoryByLabel(core.InvoicePaymentLabel),
		InstallmentIndex: 1,
		InstallmentCount: 1,
		Status:           core.Paid,
		CreatedAt:        now,
	}

	err = j.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		card, err := tx.GetCard(ctx, cardID)
		if err != nil {
			return err
		}
		if _, err := tx.GetAccount(ctx, accountID); err != nil {
			return err
		}

		out := base
		out.Kind = core.Expense
		out.AccountID = accountID
		out.Note = card.Name
		if expense, err = tx.CreateTransaction(ctx, out); err != nil {
			return err
		}

		in := base
		in.Kind = core.Income
		in.CardID = cardID
		in.Note = card.Name
		income, err = tx.CreateTransaction(ctx, in)
		return err
	})
	if err != nil {
		return core.Transaction{}, core.Transaction{}, fmt.Errorf("pay invoice of card %d: %w", cardID, err)
	}

	j.logger.InfoContext(ctx, "Invoice paid",
		applog.FieldOperation, applog.OpPayInvoice,
		applog.FieldCardID, cardID,
		applog.FieldAccountID, accountID,
		applog.FieldAmountCents, amount.Cents)
	return expense, income, nil
}

// PayPlannedItem turns a planned expense into a realized, paid expense on the
// given account dated paidDate.
func (j *Journal) PayPlannedItem(ctx context.Context, plannedID, accountID int64, paidDate core.Date) (core.Transaction, error) {
	if err := paidDate.Validate(); err != nil {
		return core.Transaction{}, err
	}

	var paid core.Transaction
	err := j.store.InTx(ctx, func(tx *storage.SQLiteRepository) error {
		item, err := tx.GetTransaction(ctx, plannedID)
		if err != nil {
			return err
		}
		if !item.Planned {
			return core.ErrNotPlanned
		}
		if item.Status == core.Paid {
			return core.ErrAlreadyPaid
		}
		if item.Kind != core.Expense {
			return fmt.Errorf("%w: only planned expenses can be paid", core.ErrInvalidKind)
		}
		if _, err := tx.GetAccount(ctx, accountID); err != nil {
			return err
		}

		item.Planned = false
		item.Status = core.Paid
		item.AccountID = accountID
		item.CardID = 0
		item.Date = paidDate
		if err := item.Validate(); err != nil {
			return err
		}
		paid, err = tx.UpdateTransaction(ctx, item)
		return err
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("pay planned item %d: %w", plannedID, err)
	}

	j.logger.InfoContext(ctx, "Planned item paid",
		applog.FieldOperation, applog.OpPayPlanned,
		applog.FieldID, plannedID,
		applog.FieldAccountID, accountID,
		applog.FieldDate, paidDate.String())
	return paid, nil
}

// InstallmentGroup returns every row of one installment purchase, ordered by
// installment index.
func (j *Journal) InstallmentGroup(ctx context.Context, group string) ([]core.Transaction, error) {
	rows, err := j.store.ListInstallmentGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("installment group %q: %w", group, core.ErrNotFound)
	}
	return rows, nil
}

// TransactionsByMonth lists the realized rows of ym, newest first.
func (j *Journal) TransactionsByMonth(ctx context.Context, ym core.YearMonth) ([]core.LedgerEntry, error) {
	rows, err := j.store.ListRealizedBetween(ctx, ym.First(), ym.Last())
	if err != nil {
		return nil, err
	}
	return j.resolve(ctx, rows)
}

// PlannedByMonth lists the planned rows of ym, newest first.
func (j *Journal) PlannedByMonth(ctx context.Context, ym core.YearMonth) ([]core.LedgerEntry, error) {
	rows, err := j.store.ListPlannedBetween(ctx, ym.First(), ym.Last())
	if err != nil {
		return nil, err
	}
	return j.resolve(ctx, rows)
}

func (j *Journal) resolve(ctx context.Context, rows []core.Transaction) ([]core.LedgerEntry, error) {
	catalog, err := j.store.CategoryCatalog(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]core.LedgerEntry, len(rows))
	for i, t := range rows {
		entries[i] = core.LedgerEntry{Transaction: t, Category: t.Category.Resolve(catalog)}
	}
	return entries, nil
}

func defaultStatus(planned bool) core.TransactionStatus {
	if planned {
		return core.Pending
	}
	return core.Paid
}

// checkReferences verifies that the rows t points at exist and that a catalog
// category matches the transaction kind. Archived categories are rejected only
// when rejectArchived is set, so existing rows stay editable.
func checkReferences(ctx context.Context, tx *storage.SQLiteRepository, t core.Transaction, rejectArchived bool) error {
	if t.Category.IsByID() {
		category, err := tx.GetCategory(ctx, t.Category.ID)
		if err != nil {
			return err
		}
		if category.Kind != t.Kind {
			return fmt.Errorf("%w: category %q is %s", core.ErrCategoryKindMismatch, category.Name, category.Kind)
		}
		if rejectArchived && category.Archived {
			return fmt.Errorf("%w: %q", core.ErrCategoryArchived, category.Name)
		}
	}
	if t.AccountID != 0 {
		if _, err := tx.GetAccount(ctx, t.AccountID); err != nil {
			return err
		}
	}
	if t.CardID != 0 {
		if _, err := tx.GetCard(ctx, t.CardID); err != nil {
			return err
		}
	}
	return nil
}
