package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

const defaultDailySeriesDays = 7

// Aggregator derives balances and summaries from the stored rows. Nothing is
// cached: every call recomputes from the store.
type Aggregator struct {
	store     *storage.SQLiteRepository
	invoices  *InvoiceCalculator
	dailyDays int
	logger    *applog.Logger
}

func NewAggregator(store *storage.SQLiteRepository, invoices *InvoiceCalculator, dailyDays int) *Aggregator {
	if dailyDays < 1 {
		dailyDays = defaultDailySeriesDays
	}
	if invoices == nil {
		invoices = NewInvoiceCalculator(store)
	}
	return &Aggregator{
		store:     store,
		invoices:  invoices,
		dailyDays: dailyDays,
		logger:    applog.Default().WithComponent(applog.ComponentAggregator),
	}
}

// AccountBalance is the opening balance plus the signed sum of the account's
// realized transactions.
func (a *Aggregator) AccountBalance(ctx context.Context, accountID int64) (core.AccountBalance, error) {
	return a.store.AccountBalance(ctx, accountID)
}

func (a *Aggregator) AccountsWithBalance(ctx context.Context) ([]core.AccountBalance, error) {
	return a.store.ListAccountBalances(ctx)
}

// WalletTotal sums the balances of wallet accounts.
func (a *Aggregator) WalletTotal(ctx context.Context) (core.Money, error) {
	return a.totalWhere(ctx, func(k core.AccountKind) bool { return k == core.Wallet })
}

// VoucherTotal sums the balances of meal and food voucher accounts.
func (a *Aggregator) VoucherTotal(ctx context.Context) (core.Money, error) {
	return a.totalWhere(ctx, core.AccountKind.IsVoucher)
}

func (a *Aggregator) totalWhere(ctx context.Context, match func(core.AccountKind) bool) (core.Money, error) {
	balances, err := a.store.ListAccountBalances(ctx)
	if err != nil {
		return core.Money{}, err
	}
	var total core.Money
	for _, b := range balances {
		if match(b.Account.Kind) {
			total = total.Add(b.Balance)
		}
	}
	return total, nil
}

// MonthSummary totals the realized income and expense of ym together with the
// planned expense. Budget usage is realized expense over planned expense, or 0
// when nothing is planned.
func (a *Aggregator) MonthSummary(ctx context.Context, ym core.YearMonth) (core.MonthSummary, error) {
	from, to := ym.First(), ym.Last()

	income, err := a.store.SumBetween(ctx, core.Income, false, from, to)
	if err != nil {
		return core.MonthSummary{}, err
	}
	expense, err := a.store.SumBetween(ctx, core.Expense, false, from, to)
	if err != nil {
		return core.MonthSummary{}, err
	}
	planned, err := a.store.SumBetween(ctx, core.Expense, true, from, to)
	if err != nil {
		return core.MonthSummary{}, err
	}

	return core.MonthSummary{
		Month:              ym,
		Income:             income,
		Expense:            expense,
		PlannedExpense:     planned,
		Net:                income.Sub(expense),
		BudgetUsagePercent: percentOf(expense, planned),
	}, nil
}

// DailySpending returns one bar per day for the configured number of days
// ending at ref. Heights are relative to the largest day, floored at one
// currency unit.
func (a *Aggregator) DailySpending(ctx context.Context, ref core.Date) ([]core.DailySpend, error) {
	from := ref.AddDays(-(a.dailyDays - 1))
	totals, err := a.store.DailyExpenseTotals(ctx, from, ref)
	if err != nil {
		return nil, err
	}

	var maxCents int64 = core.CentsPerUnit
	for _, m := range totals {
		if m.Cents > maxCents {
			maxCents = m.Cents
		}
	}

	series := make([]core.DailySpend, 0, a.dailyDays)
	for d := from; !d.After(ref); d = d.AddDays(1) {
		total := totals[d]
		series = append(series, core.DailySpend{
			Date:          d,
			Total:         total,
			HeightPercent: float64(total.Cents) / float64(maxCents) * 100,
		})
	}
	return series, nil
}

// CategorySpending groups the realized expense of ym by resolved category
// label, largest first. Invoice payments form their own group under
// core.InvoicePaymentLabel.
func (a *Aggregator) CategorySpending(ctx context.Context, ym core.YearMonth) ([]core.CategoryAmount, error) {
	rows, err := a.store.ListRealizedBetween(ctx, ym.First(), ym.Last())
	if err != nil {
		return nil, err
	}
	catalog, err := a.store.CategoryCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return groupByCategory(rows, catalog, core.Expense), nil
}

// Dashboard gathers the home-screen figures for ref in parallel.
func (a *Aggregator) Dashboard(ctx context.Context, ref core.Date) (core.Dashboard, error) {
	d := core.Dashboard{Date: ref}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.WalletTotal, err = a.WalletTotal(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.VoucherTotal, err = a.VoucherTotal(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Month, err = a.MonthSummary(gctx, ref.YearMonth())
		return err
	})
	g.Go(func() error {
		var err error
		d.Invoices, err = a.invoices.CardsWithInvoice(gctx, ref)
		return err
	})
	if err := g.Wait(); err != nil {
		return core.Dashboard{}, err
	}

	a.logger.DebugContext(ctx, "Dashboard computed",
		applog.FieldDate, ref.String(),
		applog.FieldCount, len(d.Invoices))
	return d, nil
}

// groupByCategory sums rows of kind per case-insensitive category label,
// largest amount first.
func groupByCategory(rows []core.Transaction, catalog map[int64]core.Category, kind core.TransactionKind) []core.CategoryAmount {
	index := make(map[string]int)
	var out []core.CategoryAmount
	for _, t := range rows {
		if t.Kind != kind {
			continue
		}
		resolved := t.Category.Resolve(catalog)
		key := resolved.Key()
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, core.CategoryAmount{Category: resolved})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Category.Key() < out[j].Category.Key()
	})
	return out
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole core.Money) float64 {
	if whole.Cents <= 0 {
		return 0
	}
	return float64(part.Cents) / float64(whole.Cents) * 100
}
