package services

import (
	"context"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// InvestmentService manages fixed-income positions and their accrued returns.
type InvestmentService struct {
	store  *storage.SQLiteRepository
	logger *applog.Logger
}

func NewInvestmentService(store *storage.SQLiteRepository) *InvestmentService {
	return &InvestmentService{
		store:  store,
		logger: applog.Default().WithComponent(applog.ComponentInvestment),
	}
}

func (s *InvestmentService) Create(ctx context.Context, inv core.Investment) (core.Investment, error) {
	if err := inv.Validate(); err != nil {
		return core.Investment{}, err
	}
	created, err := s.store.CreateInvestment(ctx, inv)
	if err != nil {
		return core.Investment{}, err
	}
	s.logger.InfoContext(ctx, "Investment created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldID, created.ID,
		applog.FieldAmountCents, created.Principal.Cents)
	return created, nil
}

func (s *InvestmentService) Update(ctx context.Context, inv core.Investment) (core.Investment, error) {
	if err := inv.Validate(); err != nil {
		return core.Investment{}, err
	}
	updated, err := s.store.UpdateInvestment(ctx, inv)
	if err != nil {
		return core.Investment{}, err
	}
	s.logger.InfoContext(ctx, "Investment updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldID, updated.ID)
	return updated, nil
}

func (s *InvestmentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteInvestment(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Investment deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldID, id)
	return nil
}

func (s *InvestmentService) List(ctx context.Context) ([]core.Investment, error) {
	return s.store.ListInvestments(ctx)
}

// CalculateReturns is the accrued gain of inv at asOf, rounded to the cent.
func CalculateReturns(inv core.Investment, asOf core.Date) core.Money {
	return inv.Returns(asOf)
}

// ListWithReturns returns every investment with its gain and value at asOf.
func (s *InvestmentService) ListWithReturns(ctx context.Context, asOf core.Date) ([]core.InvestmentReturn, error) {
	investments, err := s.store.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.InvestmentReturn, len(investments))
	for i, inv := range investments {
		returns := CalculateReturns(inv, asOf)
		out[i] = core.InvestmentReturn{
			Investment: inv,
			Returns:    returns,
			Value:      inv.Principal.Add(returns),
		}
	}
	return out, nil
}
