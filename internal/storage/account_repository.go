package storage

import (
	"context"
	"fmt"

	"ledger/internal/core"
	applog "ledger/internal/log"
)

func toCoreAccount(a Account) core.Account {
	return core.Account{
		ID:             a.ID,
		Name:           a.Name,
		Kind:           core.AccountKind(a.Kind),
		OpeningBalance: core.Money{Cents: a.OpeningBalanceCents},
		CreatedAt:      parseTimestamp(a.CreatedAt),
	}
}

func (r *SQLiteRepository) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	row, err := r.queries.CreateAccount(ctx, CreateAccountParams{
		Name:                a.Name,
		Kind:                string(a.Kind),
		OpeningBalanceCents: a.OpeningBalance.Cents,
		CreatedAt:           formatTimestamp(a.CreatedAt),
	})
	if err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}

	logFor(ctx).DebugContext(ctx, "Account saved to SQLite",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldID, row.ID,
		applog.FieldKind, row.Kind)
	return toCoreAccount(row), nil
}

func (r *SQLiteRepository) GetAccount(ctx context.Context, id int64) (core.Account, error) {
	row, err := r.queries.GetAccount(ctx, id)
	if err != nil {
		return core.Account{}, wrapGet(err, "account", id)
	}
	return toCoreAccount(row), nil
}

// UpdateAccount persists name and opening balance. The kind column is never
// written after creation.
func (r *SQLiteRepository) UpdateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	row, err := r.queries.UpdateAccount(ctx, UpdateAccountParams{
		Name:                a.Name,
		OpeningBalanceCents: a.OpeningBalance.Cents,
		ID:                  a.ID,
	})
	if err != nil {
		return core.Account{}, wrapGet(err, "account", a.ID)
	}
	return toCoreAccount(row), nil
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	if n == 0 {
		return notFound("account", id)
	}
	return nil
}

// ListAccountBalances returns every account with its running balance:
// opening balance plus the signed sum of its realized transactions.
func (r *SQLiteRepository) ListAccountBalances(ctx context.Context) ([]core.AccountBalance, error) {
	rows, err := r.queries.ListAccountsWithSum(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts with balance: %w", err)
	}

	balances := make([]core.AccountBalance, len(rows))
	for i, row := range rows {
		balances[i] = core.AccountBalance{
			Account: toCoreAccount(row.Account),
			Balance: core.Money{Cents: row.OpeningBalanceCents + row.RealizedCents},
		}
	}
	return balances, nil
}

// AccountBalance returns the running balance of a single account.
func (r *SQLiteRepository) AccountBalance(ctx context.Context, id int64) (core.AccountBalance, error) {
	account, err := r.GetAccount(ctx, id)
	if err != nil {
		return core.AccountBalance{}, err
	}
	sum, err := r.queries.SumAccountRealized(ctx, id)
	if err != nil {
		return core.AccountBalance{}, fmt.Errorf("sum account %d transactions: %w", id, err)
	}
	return core.AccountBalance{
		Account: account,
		Balance: account.OpeningBalance.Add(core.Money{Cents: sum}),
	}, nil
}

func (r *SQLiteRepository) CountAccountTransactions(ctx context.Context, id int64) (int64, error) {
	n, err := r.queries.CountAccountTransactions(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count account %d transactions: %w", id, err)
	}
	return n, nil
}
