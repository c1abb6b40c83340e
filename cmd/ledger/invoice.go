package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice [card-id]",
	Short: "Show the invoice cycle containing a date",
	Long: `Show the card invoice whose cycle contains --date (default today).
Without a card id every card is listed with its current total and
available limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		if len(args) == 0 {
			invoices, err := app.Invoices.CardsWithInvoice(cmd.Context(), ref)
			if err != nil {
				return err
			}
			return render(cmd, invoices, func(w io.Writer) {
				row(w, "CARD", "NAME", "CYCLE", "CLOSES", "DUE", "TOTAL", "AVAILABLE")
				for _, inv := range invoices {
					row(w, inv.Card.ID, inv.Card.Name, cycleRange(inv.Cycle), inv.Cycle.CloseDate, inv.Cycle.DueDate, inv.Total, inv.AvailableLimit)
				}
			})
		}

		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		inv, err := app.Invoices.CardInvoice(cmd.Context(), id, ref)
		if err != nil {
			return err
		}
		return render(cmd, inv, func(w io.Writer) {
			row(w, inv.Card.Name, cycleRange(inv.Cycle), "due "+inv.Cycle.DueDate.String())
			row(w)
			row(w, "ID", "DATE", "KIND", "AMOUNT", "INSTALLMENT", "NOTE")
			for _, t := range inv.Transactions {
				row(w, t.ID, t.Date, t.Kind, t.Amount, installment(t), t.Note)
			}
			row(w)
			row(w, "TOTAL", inv.Total)
			row(w, "AVAILABLE", inv.AvailableLimit)
		})
	},
}

var payInvoiceCmd = &cobra.Command{
	Use:     "pay-invoice",
	Short:   "Pay a card invoice from an account",
	Example: `  ledger pay-invoice --card 2 --account 1 --amount 250`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID, _ := cmd.Flags().GetInt64("card")
		accountID, _ := cmd.Flags().GetInt64("account")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}
		expense, income, err := app.Journal.PayInvoice(cmd.Context(), cardID, accountID, amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Paid %s to card %d from account %d (transactions %d, %d)\n",
			amount, cardID, accountID, expense.ID, income.ID)
		return nil
	},
}

var payPlannedCmd = &cobra.Command{
	Use:   "pay-planned <planned-id>",
	Short: "Turn a budget line into a paid expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		accountID, _ := cmd.Flags().GetInt64("account")
		paidDate, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		t, err := app.Journal.PayPlannedItem(cmd.Context(), id, accountID, paidDate)
		if err != nil {
			return err
		}
		return printTransactions(cmd, []core.Transaction{t})
	},
}

func cycleRange(c core.InvoiceCycle) string {
	return c.Start.String() + ".." + c.End.String()
}

func init() {
	rootCmd.AddCommand(invoiceCmd, payInvoiceCmd, payPlannedCmd)

	invoiceCmd.Flags().String("date", "", "Reference date as YYYY-MM-DD (default today)")

	payInvoiceCmd.Flags().Int64("card", 0, "Card id")
	payInvoiceCmd.Flags().Int64("account", 0, "Paying account id")
	payInvoiceCmd.Flags().String("amount", "", "Amount to pay")
	payInvoiceCmd.MarkFlagRequired("card")
	payInvoiceCmd.MarkFlagRequired("account")
	payInvoiceCmd.MarkFlagRequired("amount")

	payPlannedCmd.Flags().Int64("account", 0, "Paying account id")
	payPlannedCmd.Flags().String("date", "", "Payment date as YYYY-MM-DD (default today)")
	payPlannedCmd.MarkFlagRequired("account")
}
