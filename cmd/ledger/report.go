package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Compare planned and realized spend per category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := monthFlag(cmd, "month")
		if err != nil {
			return err
		}
		lines, err := app.Budget.MonthBudget(cmd.Context(), month)
		if err != nil {
			return err
		}
		return render(cmd, lines, func(w io.Writer) {
			row(w, "CATEGORY", "PLANNED", "SPENT", "USED", "STATE")
			for _, l := range lines {
				row(w, l.Category.Label, l.Planned, l.Spent, percent(l.Percent), l.State)
			}
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expenses and category totals for a month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := monthFlag(cmd, "month")
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		sum, err := app.Aggregator.MonthSummary(ctx, month)
		if err != nil {
			return err
		}
		byCategory, err := app.Aggregator.CategorySpending(ctx, month)
		if err != nil {
			return err
		}
		out := struct {
			Summary    any
			Categories any
		}{sum, byCategory}
		return render(cmd, out, func(w io.Writer) {
			row(w, "MONTH", sum.Month)
			row(w, "INCOME", sum.Income)
			row(w, "EXPENSE", sum.Expense)
			row(w, "NET", sum.Net)
			row(w, "PLANNED", sum.PlannedExpense)
			row(w, "BUDGET USED", percent(sum.BudgetUsagePercent))
			if len(byCategory) == 0 {
				return
			}
			row(w)
			row(w, "CATEGORY", "SPENT")
			for _, c := range byCategory {
				row(w, c.Category.Label, c.Amount)
			}
		})
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show realized spending for the days ending at a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		days, err := app.Aggregator.DailySpending(cmd.Context(), ref)
		if err != nil {
			return err
		}
		return render(cmd, days, func(w io.Writer) {
			row(w, "DATE", "TOTAL", "")
			for _, d := range days {
				row(w, d.Date, d.Total, bar(d.HeightPercent))
			}
		})
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show balances, the current month and open card invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		d, err := app.Aggregator.Dashboard(cmd.Context(), ref)
		if err != nil {
			return err
		}
		return render(cmd, d, func(w io.Writer) {
			row(w, "DATE", d.Date)
			row(w, "WALLETS", d.WalletTotal)
			row(w, "VOUCHERS", d.VoucherTotal)
			row(w, "INCOME", d.Month.Income)
			row(w, "EXPENSE", d.Month.Expense)
			row(w, "NET", d.Month.Net)
			row(w, "BUDGET USED", percent(d.Month.BudgetUsagePercent))
			if len(d.Invoices) == 0 {
				return
			}
			row(w)
			row(w, "CARD", "CLOSES", "DUE", "TOTAL", "AVAILABLE")
			for _, inv := range d.Invoices {
				row(w, inv.Card.Name, inv.Cycle.CloseDate, inv.Cycle.DueDate, inv.Total, inv.AvailableLimit)
			}
		})
	},
}

// bar draws a height percentage as a row of at most 20 blocks.
func bar(heightPercent float64) string {
	n := int(heightPercent/5 + 0.5)
	return strings.Repeat("#", n)
}

func init() {
	rootCmd.AddCommand(budgetCmd, summaryCmd, dailyCmd, dashboardCmd)

	budgetCmd.Flags().String("month", "", "Month as YYYY-MM (default current)")
	summaryCmd.Flags().String("month", "", "Month as YYYY-MM (default current)")
	dailyCmd.Flags().String("date", "", "Last day of the series as YYYY-MM-DD (default today)")
	dashboardCmd.Flags().String("date", "", "Reference date as YYYY-MM-DD (default today)")
}
