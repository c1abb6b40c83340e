package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvestmentReturns(t *testing.T) {
	start := NewDate(2024, 1, 1)
	rate := decimal.NewNullDecimal(decimal.NewFromInt(12))

	tests := []struct {
		name string
		inv  Investment
		asOf Date
		want int64
	}{
		{
			name: "one year at 12%",
			inv:  Investment{Principal: Money{Cents: 100000}, AnnualRate: rate, StartDate: start},
			asOf: start.AddDays(365),
			want: 12747,
		},
		{
			name: "no rate",
			inv:  Investment{Principal: Money{Cents: 100000}, StartDate: start},
			asOf: start.AddDays(365),
			want: 0,
		},
		{
			name: "no start date",
			inv:  Investment{Principal: Money{Cents: 100000}, AnnualRate: rate},
			asOf: start.AddDays(365),
			want: 0,
		},
		{
			name: "before start",
			inv:  Investment{Principal: Money{Cents: 100000}, AnnualRate: rate, StartDate: start},
			asOf: start.AddDays(-3),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.Returns(tt.asOf); got.Cents != tt.want {
				t.Fatalf("Returns() = %d, want %d", got.Cents, tt.want)
			}
		})
	}
}
