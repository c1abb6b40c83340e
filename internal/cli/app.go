package cli

import (
	"time"

	"ledger/internal/config"
	"ledger/internal/services"
	"ledger/internal/storage"
)

// App wires the ledger services around one record store.
type App struct {
	Store       *storage.SQLiteRepository
	Journal     *services.Journal
	Invoices    *services.InvoiceCalculator
	Aggregator  *services.Aggregator
	Budget      *services.BudgetTracker
	Catalog     *services.Catalog
	Investments *services.InvestmentService
	Now         func() time.Time
}

func NewApp(cfg *config.Config, store *storage.SQLiteRepository, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	invoices := services.NewInvoiceCalculator(store)
	return &App{
		Store:       store,
		Journal:     services.NewJournal(store, now),
		Invoices:    invoices,
		Aggregator:  services.NewAggregator(store, invoices, cfg.DailySeriesDays),
		Budget:      services.NewBudgetTracker(store, cfg.BudgetAttentionPercent),
		Catalog:     services.NewCatalog(store, now),
		Investments: services.NewInvestmentService(store),
		Now:         now,
	}
}

// Close releases the record store.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
