package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ledger/internal/core"
	"ledger/internal/storage"
)

// fixedNow is 2025-03-15, the reference day used across these tests.
func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
}

type fixture struct {
	store      *storage.SQLiteRepository
	journal    *Journal
	invoices   *InvoiceCalculator
	aggregator *Aggregator
	budget     *BudgetTracker
	catalog    *Catalog
	investing  *InvestmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	invoices := NewInvoiceCalculator(store)
	return &fixture{
		store:      store,
		journal:    NewJournal(store, fixedNow),
		invoices:   invoices,
		aggregator: NewAggregator(store, invoices, 7),
		budget:     NewBudgetTracker(store, 90),
		catalog:    NewCatalog(store, fixedNow),
		investing:  NewInvestmentService(store),
	}
}

func (f *fixture) account(t *testing.T, name string, kind core.AccountKind, openingCents int64) core.Account {
	t.Helper()
	a, err := f.catalog.CreateAccount(context.Background(), core.Account{
		Name: name, Kind: kind, OpeningBalance: core.Money{Cents: openingCents},
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) card(t *testing.T, name string, closingDay, dueDay int, limitCents int64) core.Card {
	t.Helper()
	c, err := f.catalog.CreateCard(context.Background(), core.Card{
		Name: name, ClosingDay: closingDay, DueDay: dueDay, CreditLimit: core.Money{Cents: limitCents},
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) category(t *testing.T, name string, kind core.TransactionKind) core.Category {
	t.Helper()
	c, err := f.catalog.CreateCategory(context.Background(), core.Category{Name: name, Kind: kind, Permanent: true})
	require.NoError(t, err)
	return c
}

// record creates a single-installment entry and returns the stored row.
func (f *fixture) record(t *testing.T, entry core.Transaction) core.Transaction {
	t.Helper()
	rows, err := f.journal.CreateTransaction(context.Background(), entry)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	return rows[0]
}

func cents(c int64) core.Money { return core.Money{Cents: c} }

func day(y, m, d int) core.Date { return core.NewDate(y, m, d) }
