package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMigrationsRecordVersion(t *testing.T) {
	repo := newTestRepository(t)

	version, dirty, err := repo.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != 6 || dirty {
		t.Fatalf("expected clean version 6, got %d dirty=%v", version, dirty)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	for i := 0; i < 2; i++ {
		repo, err := NewSQLiteRepository(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		repo.Close()
	}
}

func TestAccountBalance(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	acc, err := repo.CreateAccount(ctx, core.Account{Name: "Cash", Kind: core.Wallet, OpeningBalance: core.Money{Cents: 10000}})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	rows := []core.Transaction{
		{Kind: core.Income, Amount: core.Money{Cents: 5000}, Date: core.NewDate(2025, 3, 1), AccountID: acc.ID},
		{Kind: core.Expense, Amount: core.Money{Cents: 2000}, Date: core.NewDate(2025, 3, 2), AccountID: acc.ID},
		{Kind: core.Expense, Amount: core.Money{Cents: 99999}, Date: core.NewDate(2025, 3, 3), AccountID: acc.ID, Planned: true},
	}
	for _, tx := range rows {
		tx.InstallmentIndex, tx.InstallmentCount, tx.Status = 1, 1, core.Paid
		if _, err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}

	got, err := repo.AccountBalance(ctx, acc.ID)
	if err != nil {
		t.Fatalf("AccountBalance: %v", err)
	}
	if got.Balance.Cents != 13000 {
		t.Fatalf("balance = %d, want 13000", got.Balance.Cents)
	}

	list, err := repo.ListAccountBalances(ctx)
	if err != nil {
		t.Fatalf("ListAccountBalances: %v", err)
	}
	if len(list) != 1 || list[0].Balance != got.Balance {
		t.Fatalf("list and single balance disagree: %+v vs %+v", list, got)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	if _, err := repo.GetTransaction(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("GetTransaction: expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteCard(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("DeleteCard: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.UpdateInvestment(ctx, core.Investment{ID: 42, Name: "x", Principal: core.Money{Cents: 1}}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("UpdateInvestment: expected ErrNotFound, got %v", err)
	}
}

func TestInTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	boom := errors.New("boom")

	err := repo.InTx(ctx, func(tx *SQLiteRepository) error {
		if _, err := tx.CreateAccount(ctx, core.Account{Name: "Temp", Kind: core.Wallet}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	list, err := repo.ListAccountBalances(ctx)
	if err != nil {
		t.Fatalf("ListAccountBalances: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected rollback, found %d accounts", len(list))
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	card, err := repo.CreateCard(ctx, core.Card{Name: "Visa", ClosingDay: 10, DueDay: 20})
	if err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	cat, err := repo.CreateCategory(ctx, core.Category{Name: "Food", Kind: core.Expense, Permanent: true})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	in := core.Transaction{
		Kind:             core.Expense,
		Amount:           core.Money{Cents: 4590},
		Date:             core.NewDate(2025, 5, 31),
		Category:         core.CategoryByID(cat.ID),
		Note:             "dinner",
		CardID:           card.ID,
		InstallmentIndex: 2,
		InstallmentCount: 3,
		InstallmentGroup: "group-1",
		Status:           core.Paid,
	}
	created, err := repo.CreateTransaction(ctx, in)
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	got, err := repo.GetTransaction(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Date != in.Date || got.Amount != in.Amount || got.CardID != card.ID || got.AccountID != 0 {
		t.Fatalf("unexpected row %+v", got)
	}
	if got.Category.ID != cat.ID || got.InstallmentGroup != "group-1" || got.InstallmentIndex != 2 {
		t.Fatalf("unexpected metadata %+v", got)
	}

	listed, err := repo.ListCardTransactionsBetween(ctx, card.ID, core.NewDate(2025, 5, 1), core.NewDate(2025, 5, 31))
	if err != nil {
		t.Fatalf("ListCardTransactionsBetween: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 card row, got %d", len(listed))
	}
}

func TestInvestmentNullableColumns(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	bare, err := repo.CreateInvestment(ctx, core.Investment{Name: "Savings", Principal: core.Money{Cents: 100000}})
	if err != nil {
		t.Fatalf("CreateInvestment: %v", err)
	}
	if bare.AnnualRate.Valid || !bare.StartDate.IsEmpty() {
		t.Fatalf("expected empty rate and start date, got %+v", bare)
	}

	bare.AnnualRate = decimal.NewNullDecimal(decimal.RequireFromString("11.75"))
	bare.StartDate = core.NewDate(2025, 1, 2)
	updated, err := repo.UpdateInvestment(ctx, bare)
	if err != nil {
		t.Fatalf("UpdateInvestment: %v", err)
	}
	if !updated.AnnualRate.Decimal.Equal(decimal.RequireFromString("11.75")) || updated.StartDate != core.NewDate(2025, 1, 2) {
		t.Fatalf("unexpected investment %+v", updated)
	}
}

func TestTimestampsKeepWallClock(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	created := time.Date(2025, time.March, 1, 0, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	cat, err := repo.CreateCategory(ctx, core.Category{Name: "Carnival", Kind: core.Expense, CreatedAt: created})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	got, err := repo.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if d := core.DateOf(got.CreatedAt); d != core.NewDate(2025, 3, 1) {
		t.Fatalf("creation day = %v, want 2025-03-01", d)
	}
}
