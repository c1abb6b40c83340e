package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		name       string
		closingDay int
		dueDay     int
		ref        core.Date
		want       core.InvoiceCycle
	}{
		{
			name:       "after closing day moves to next month",
			closingDay: 10, dueDay: 20,
			ref: day(2025, 3, 15),
			want: core.InvoiceCycle{
				Start: day(2025, 3, 10), End: day(2025, 4, 9),
				CloseDate: day(2025, 4, 10), DueDate: day(2025, 4, 20),
			},
		},
		{
			name:       "before closing day stays in month",
			closingDay: 10, dueDay: 20,
			ref: day(2025, 3, 5),
			want: core.InvoiceCycle{
				Start: day(2025, 2, 10), End: day(2025, 3, 9),
				CloseDate: day(2025, 3, 10), DueDate: day(2025, 3, 20),
			},
		},
		{
			name:       "on closing day starts new cycle",
			closingDay: 10, dueDay: 20,
			ref: day(2025, 3, 10),
			want: core.InvoiceCycle{
				Start: day(2025, 3, 10), End: day(2025, 4, 9),
				CloseDate: day(2025, 4, 10), DueDate: day(2025, 4, 20),
			},
		},
		{
			name:       "due day before closing day falls next month",
			closingDay: 25, dueDay: 5,
			ref: day(2025, 3, 1),
			want: core.InvoiceCycle{
				Start: day(2025, 2, 25), End: day(2025, 3, 24),
				CloseDate: day(2025, 3, 25), DueDate: day(2025, 4, 5),
			},
		},
		{
			name:       "closing day clamped in february",
			closingDay: 31, dueDay: 10,
			ref: day(2025, 2, 28),
			want: core.InvoiceCycle{
				Start: day(2025, 2, 28), End: day(2025, 3, 30),
				CloseDate: day(2025, 3, 31), DueDate: day(2025, 4, 10),
			},
		},
		{
			name:       "closing day clamped at start",
			closingDay: 31, dueDay: 10,
			ref: day(2025, 2, 15),
			want: core.InvoiceCycle{
				Start: day(2025, 1, 31), End: day(2025, 2, 27),
				CloseDate: day(2025, 2, 28), DueDate: day(2025, 3, 10),
			},
		},
		{
			name:       "year boundary",
			closingDay: 5, dueDay: 15,
			ref: day(2024, 12, 20),
			want: core.InvoiceCycle{
				Start: day(2024, 12, 5), End: day(2025, 1, 4),
				CloseDate: day(2025, 1, 5), DueDate: day(2025, 1, 15),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := core.Card{ClosingDay: tt.closingDay, DueDay: tt.dueDay}
			got := Cycle(card, tt.ref)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.ref.Within(got.Start, got.End), "reference must lie inside its cycle")
		})
	}
}

func TestCycle_ConsecutiveCyclesAreContiguous(t *testing.T) {
	for _, closing := range []int{1, 10, 28, 29, 30, 31} {
		card := core.Card{ClosingDay: closing, DueDay: 15}
		ref := day(2024, 1, 1)
		for i := 0; i < 400; i++ {
			cycle := Cycle(card, ref)
			next := Cycle(card, cycle.End.AddDays(1))
			if next.Start != cycle.End.AddDays(1) {
				t.Fatalf("closing %d: cycle %v..%v followed by %v..%v", closing, cycle.Start, cycle.End, next.Start, next.End)
			}
			ref = ref.AddDays(1)
		}
	}
}

func TestInvoiceCalculator_CardInvoice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	card := f.card(t, "Visa", 10, 20, 100000)
	other := f.card(t, "Master", 10, 20, 0)
	acc := f.account(t, "Cash", core.Wallet, 0)

	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(1000), Date: day(2025, 3, 9), CardID: card.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(2000), Date: day(2025, 3, 10), CardID: card.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(3000), Date: day(2025, 4, 9), CardID: card.ID})
	f.record(t, core.Transaction{Kind: core.Income, Amount: cents(500), Date: day(2025, 3, 20), CardID: card.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(4000), Date: day(2025, 4, 10), CardID: card.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(7000), Date: day(2025, 3, 20), CardID: other.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(8000), Date: day(2025, 3, 20), AccountID: acc.ID})
	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(9000), Date: day(2025, 3, 20), Planned: true})

	inv, err := f.invoices.CardInvoice(ctx, card.ID, day(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 10), inv.Cycle.Start)
	assert.Equal(t, day(2025, 4, 9), inv.Cycle.End)
	assert.Equal(t, cents(4500), inv.Total)
	assert.Equal(t, cents(95500), inv.AvailableLimit)
	require.Len(t, inv.Transactions, 3)

	var sum core.Money
	for _, row := range inv.Transactions {
		sum = sum.Sub(row.Signed())
	}
	assert.Equal(t, inv.Total, sum)

	rows, err := f.invoices.CardTransactions(ctx, card.ID, day(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, inv.Transactions, rows)

	_, err = f.invoices.CardInvoice(ctx, 999, day(2025, 3, 15))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInvoiceCalculator_CardsWithInvoice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	visa := f.card(t, "Visa", 10, 20, 10000)
	master := f.card(t, "Master", 5, 15, 10000)

	f.record(t, core.Transaction{Kind: core.Expense, Amount: cents(2500), Date: day(2025, 3, 12), CardID: visa.ID})
	f.record(t, core.Transaction{Kind: core.Income, Amount: cents(1500), Date: day(2025, 3, 12), CardID: master.ID})

	invoices, err := f.invoices.CardsWithInvoice(ctx, day(2025, 3, 15))
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	byName := map[string]core.Invoice{}
	for _, inv := range invoices {
		byName[inv.Card.Name] = inv
	}
	assert.Equal(t, cents(7500), byName["Visa"].AvailableLimit)
	assert.Equal(t, cents(-1500), byName["Master"].Total)
	assert.Equal(t, cents(10000), byName["Master"].AvailableLimit, "credit balance does not raise the limit")
}
