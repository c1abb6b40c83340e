package services

import (
	"context"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// Cycle returns the invoice cycle of card that contains ref.
//
// The closing day is clamped to the length of each month. A reference on or
// after the closing day belongs to the invoice that closes next month. The
// cycle runs from the closing day of the previous month up to the day before
// the closing day of the target month. The due day falls in the target month
// when it comes after the closing day, otherwise in the month after.
func Cycle(card core.Card, ref core.Date) core.InvoiceCycle {
	target := ref.YearMonth()
	if ref.Day >= target.DayClamped(card.ClosingDay).Day {
		target = target.AddMonths(1)
	}

	closeDate := target.DayClamped(card.ClosingDay)
	due := target.DayClamped(card.DueDay)
	if card.DueDay <= card.ClosingDay {
		due = target.AddMonths(1).DayClamped(card.DueDay)
	}

	return core.InvoiceCycle{
		Start:     target.AddMonths(-1).DayClamped(card.ClosingDay),
		End:       closeDate.AddDays(-1),
		CloseDate: closeDate,
		DueDate:   due,
	}
}

// InvoiceCalculator computes card invoices from the realized card rows.
type InvoiceCalculator struct {
	store  *storage.SQLiteRepository
	logger *applog.Logger
}

func NewInvoiceCalculator(store *storage.SQLiteRepository) *InvoiceCalculator {
	return &InvoiceCalculator{
		store:  store,
		logger: applog.Default().WithComponent(applog.ComponentInvoice),
	}
}

// CardTransactions lists the realized rows of the cycle containing ref,
// oldest first.
func (c *InvoiceCalculator) CardTransactions(ctx context.Context, cardID int64, ref core.Date) ([]core.Transaction, error) {
	card, err := c.store.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	cycle := Cycle(card, ref)
	return c.store.ListCardTransactionsBetween(ctx, card.ID, cycle.Start, cycle.End)
}

// CardInvoice returns the invoice of the cycle containing ref. Expenses add to
// the total and incomes (payments, refunds) subtract from it.
func (c *InvoiceCalculator) CardInvoice(ctx context.Context, cardID int64, ref core.Date) (core.Invoice, error) {
	card, err := c.store.GetCard(ctx, cardID)
	if err != nil {
		return core.Invoice{}, err
	}
	return c.invoiceFor(ctx, card, ref)
}

// CardsWithInvoice returns the current invoice of every card.
func (c *InvoiceCalculator) CardsWithInvoice(ctx context.Context, ref core.Date) ([]core.Invoice, error) {
	cards, err := c.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	invoices := make([]core.Invoice, 0, len(cards))
	for _, card := range cards {
		inv, err := c.invoiceFor(ctx, card, ref)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (c *InvoiceCalculator) invoiceFor(ctx context.Context, card core.Card, ref core.Date) (core.Invoice, error) {
	cycle := Cycle(card, ref)
	rows, err := c.store.ListCardTransactionsBetween(ctx, card.ID, cycle.Start, cycle.End)
	if err != nil {
		return core.Invoice{}, err
	}

	var total core.Money
	for _, t := range rows {
		total = total.Sub(t.Signed())
	}

	used := total
	if used.Cents < 0 {
		used = core.Money{}
	}

	c.logger.DebugContext(ctx, "Invoice computed",
		applog.FieldCardID, card.ID,
		applog.FieldDate, ref.String(),
		applog.FieldCount, len(rows),
		applog.FieldAmountCents, total.Cents)

	return core.Invoice{
		Card:           card,
		Cycle:          cycle,
		Total:          total,
		AvailableLimit: card.CreditLimit.Sub(used),
		Transactions:   rows,
	}, nil
}
