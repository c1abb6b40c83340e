package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
)

func TestCatalog_Accounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.catalog.CreateAccount(ctx, core.Account{Name: "  ", Kind: core.Wallet})
	assert.ErrorIs(t, err, core.ErrEmptyName)
	_, err = f.catalog.CreateAccount(ctx, core.Account{Name: "Cash", Kind: "savings"})
	assert.ErrorIs(t, err, core.ErrInvalidAccountKind)

	acc := f.account(t, " Cash ", core.Wallet, 1000)
	assert.Equal(t, "Cash", acc.Name)

	acc.Name = "Pocket"
	acc.OpeningBalance = cents(-300)
	updated, err := f.catalog.UpdateAccount(ctx, acc)
	require.NoError(t, err)
	assert.Equal(t, "Pocket", updated.Name)
	assert.Equal(t, cents(-300), updated.OpeningBalance)
	assert.Equal(t, core.Wallet, updated.Kind)

	acc.Kind = core.MealVoucher
	_, err = f.catalog.UpdateAccount(ctx, acc)
	assert.ErrorIs(t, err, core.ErrAccountKindImmutable)

	accounts, err := f.catalog.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Pocket", accounts[0].Name)
}

func TestCatalog_DeleteAccountInUse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := f.account(t, "Cash", core.Wallet, 0)
	unused := f.account(t, "Spare", core.Wallet, 0)

	row := f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(100), Date: day(2025, 3, 1), AccountID: acc.ID})

	assert.ErrorIs(t, f.catalog.DeleteAccount(ctx, acc.ID), core.ErrInUse)
	require.NoError(t, f.catalog.DeleteAccount(ctx, unused.ID))
	assert.ErrorIs(t, f.catalog.DeleteAccount(ctx, unused.ID), core.ErrNotFound)

	require.NoError(t, f.journal.DeleteTransaction(ctx, row.ID))
	assert.NoError(t, f.catalog.DeleteAccount(ctx, acc.ID))
}

func TestCatalog_Cards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name string
		card core.Card
		want error
	}{
		{"closing day zero", core.Card{Name: "A", ClosingDay: 0, DueDay: 10}, core.ErrInvalidDay},
		{"due day 32", core.Card{Name: "A", ClosingDay: 1, DueDay: 32}, core.ErrInvalidDay},
		{"negative limit", core.Card{Name: "A", ClosingDay: 1, DueDay: 10, CreditLimit: cents(-1)}, core.ErrNegativeCreditLimit},
		{"empty name", core.Card{ClosingDay: 1, DueDay: 10}, core.ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.catalog.CreateCard(ctx, tt.card)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	card := f.card(t, "Visa", 10, 20, 100000)
	card.DueDay = 25
	card.Description = "travel card"
	updated, err := f.catalog.UpdateCard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.DueDay)
	assert.Equal(t, "travel card", updated.Description)

	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(100), Date: day(2025, 3, 1), CardID: card.ID})
	assert.ErrorIs(t, f.catalog.DeleteCard(ctx, card.ID), core.ErrInUse)

	spare := f.card(t, "Spare", 1, 10, 0)
	require.NoError(t, f.catalog.DeleteCard(ctx, spare.ID))

	cards, err := f.catalog.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Visa", cards[0].Name)
}

func TestCatalog_ActiveCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	groceries := f.category(t, "Groceries", core.Expense)
	f.category(t, "Salary", core.Income)
	_, err := f.catalog.CreateCategory(ctx, core.Category{Name: "Wedding gift", Kind: core.Expense})
	require.NoError(t, err)
	_, err = f.catalog.CreateCategory(ctx, core.Category{
		Name: "Old trip", Kind: core.Expense, CreatedAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	names := func(cats []core.Category) []string {
		var out []string
		for _, c := range cats {
			out = append(out, c.Name)
		}
		return out
	}

	march, err := f.catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 3))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Groceries", "Wedding gift"}, names(march))

	april, err := f.catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 4))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Groceries"}, names(april))

	january, err := f.catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Groceries", "Old trip"}, names(january))

	require.NoError(t, f.catalog.ArchiveCategory(ctx, groceries.ID))
	march, err = f.catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 3))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wedding gift"}, names(march))

	require.NoError(t, f.catalog.UnarchiveCategory(ctx, groceries.ID))
	march, err = f.catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 3))
	require.NoError(t, err)
	assert.Len(t, march, 2)

	all, err := f.catalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = f.catalog.ActiveCategories(ctx, "transfer", core.NewYearMonth(2025, 3))
	assert.ErrorIs(t, err, core.ErrInvalidKind)
	assert.ErrorIs(t, f.catalog.ArchiveCategory(ctx, 999), core.ErrNotFound)
}

func TestCatalog_ActiveCategoriesUseLocalCreationDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rome := time.FixedZone("CEST", 2*60*60)
	catalog := NewCatalog(f.store, func() time.Time {
		return time.Date(2025, time.March, 1, 0, 30, 0, 0, rome)
	})

	created, err := catalog.CreateCategory(ctx, core.Category{Name: "Carnival", Kind: core.Expense})
	require.NoError(t, err)

	stored, err := f.store.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 1), core.DateOf(stored.CreatedAt))

	march, err := catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 3))
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "Carnival", march[0].Name)

	february, err := catalog.ActiveCategories(ctx, core.Expense, core.NewYearMonth(2025, 2))
	require.NoError(t, err)
	assert.Empty(t, february)
}

func TestCatalog_ArchiveKeepsTransactions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := f.account(t, "Cash", core.Wallet, 0)
	food := f.category(t, "Food", core.Expense)

	row := f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(100), Date: day(2025, 3, 1), AccountID: acc.ID, Category: core.CategoryByID(food.ID)})
	require.NoError(t, f.catalog.ArchiveCategory(ctx, food.ID))

	stored, err := f.store.GetTransaction(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, row, stored)

	entries, err := f.journal.TransactionsByMonth(ctx, core.NewYearMonth(2025, 3))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Food", entries[0].Category.Label)
}

func TestCatalog_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	food := f.category(t, "Food", core.Expense)

	food.Name = "Groceries"
	food.Color = "#00ff00"
	food.Permanent = false
	updated, err := f.catalog.UpdateCategory(ctx, food)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)
	assert.Equal(t, "#00ff00", updated.Color)
	assert.False(t, updated.Permanent)

	food.Kind = core.Income
	_, err = f.catalog.UpdateCategory(ctx, food)
	assert.ErrorIs(t, err, core.ErrInvalidKind)
}
