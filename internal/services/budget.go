package services

import (
	"context"
	"sort"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

const defaultAttentionPercent = 90

// BudgetTracker compares planned expense with realized expense per category.
type BudgetTracker struct {
	store            *storage.SQLiteRepository
	attentionPercent float64
	logger           *applog.Logger
}

func NewBudgetTracker(store *storage.SQLiteRepository, attentionPercent float64) *BudgetTracker {
	if attentionPercent <= 0 || attentionPercent >= 100 {
		attentionPercent = defaultAttentionPercent
	}
	return &BudgetTracker{
		store:            store,
		attentionPercent: attentionPercent,
		logger:           applog.Default().WithComponent(applog.ComponentBudget),
	}
}

// MonthBudget returns one line per category that has planned or realized
// expense in ym. Categories are matched on their case-insensitive label.
func (b *BudgetTracker) MonthBudget(ctx context.Context, ym core.YearMonth) ([]core.BudgetLine, error) {
	from, to := ym.First(), ym.Last()

	planned, err := b.store.ListPlannedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	realized, err := b.store.ListRealizedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	catalog, err := b.store.CategoryCatalog(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var lines []core.BudgetLine
	lineFor := func(c core.ResolvedCategory) *core.BudgetLine {
		key := c.Key()
		i, ok := index[key]
		if !ok {
			i = len(lines)
			index[key] = i
			lines = append(lines, core.BudgetLine{Category: c})
		}
		return &lines[i]
	}

	for _, p := range groupByCategory(planned, catalog, core.Expense) {
		lineFor(p.Category).Planned = p.Amount
	}
	for _, s := range groupByCategory(realized, catalog, core.Expense) {
		lineFor(s.Category).Spent = s.Amount
	}

	for i := range lines {
		l := &lines[i]
		l.Percent = percentOf(l.Spent, l.Planned)
		l.State = b.state(l.Percent)
		l.Over = l.Percent > 100
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Planned.Cents != lines[j].Planned.Cents {
			return lines[i].Planned.Cents > lines[j].Planned.Cents
		}
		return lines[i].Category.Key() < lines[j].Category.Key()
	})

	b.logger.DebugContext(ctx, "Budget computed",
		applog.FieldMonth, ym.String(),
		applog.FieldCount, len(lines))
	return lines, nil
}

func (b *BudgetTracker) state(percent float64) core.BudgetState {
	switch {
	case percent >= 100:
		return core.BudgetExceeded
	case percent > b.attentionPercent:
		return core.BudgetAttention
	default:
		return core.BudgetOK
	}
}
