package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and edit transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense",
	Example: `  # Groceries paid from account 1
  ledger tx add --kind expense --amount 42.80 --account 1 --category-id 3

  # A TV bought on card 2 in 10 installments of 150.00
  ledger tx add --kind expense --amount 150 --card 2 --installments 10 --category Electronics

  # Budget line for the month
  ledger tx add --kind expense --amount 400 --planned --category Groceries --date 2025-03-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		kind, _ := flags.GetString("kind")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}
		date, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		note, _ := flags.GetString("note")
		planned, _ := flags.GetBool("planned")
		accountID, _ := flags.GetInt64("account")
		cardID, _ := flags.GetInt64("card")
		count, _ := flags.GetInt("installments")

		rows, err := app.Journal.CreateTransaction(cmd.Context(), core.Transaction{
			Kind:             core.TransactionKind(kind),
			Amount:           amount,
			Date:             date,
			Category:         categoryFromFlags(cmd),
			Note:             note,
			Planned:          planned,
			AccountID:        accountID,
			CardID:           cardID,
			InstallmentCount: count,
		})
		if err != nil {
			return err
		}
		return printTransactions(cmd, rows)
	},
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the transactions of a month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := monthFlag(cmd, "month")
		if err != nil {
			return err
		}
		planned, _ := cmd.Flags().GetBool("planned")
		var entries []core.LedgerEntry
		if planned {
			entries, err = app.Journal.PlannedByMonth(cmd.Context(), month)
		} else {
			entries, err = app.Journal.TransactionsByMonth(cmd.Context(), month)
		}
		if err != nil {
			return err
		}
		return render(cmd, entries, func(w io.Writer) {
			row(w, "ID", "DATE", "KIND", "AMOUNT", "CATEGORY", "TARGET", "INSTALLMENT", "STATUS", "NOTE")
			for _, e := range entries {
				t := e.Transaction
				row(w, t.ID, t.Date, t.Kind, t.Amount, e.Category.Label, target(t), installment(t), t.Status, t.Note)
			}
		})
	},
}

var txUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change one transaction; sibling installments are untouched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}
		t, err := app.Journal.UpdateTransaction(cmd.Context(), id, patch)
		if err != nil {
			return err
		}
		return printTransactions(cmd, []core.Transaction{t})
	},
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Journal.DeleteTransaction(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %d\n", id)
		return nil
	},
}

var txGroupCmd = &cobra.Command{
	Use:   "group <installment-group>",
	Short: "List every installment of one purchase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := app.Journal.InstallmentGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printTransactions(cmd, rows)
	},
}

func printTransactions(cmd *cobra.Command, rows []core.Transaction) error {
	return render(cmd, rows, func(w io.Writer) {
		row(w, "ID", "DATE", "KIND", "AMOUNT", "TARGET", "INSTALLMENT", "GROUP", "STATUS")
		for _, t := range rows {
			row(w, t.ID, t.Date, t.Kind, t.Amount, target(t), installment(t), t.InstallmentGroup, t.Status)
		}
	})
}

func categoryFromFlags(cmd *cobra.Command) core.CategoryRef {
	if id, _ := cmd.Flags().GetInt64("category-id"); id != 0 {
		return core.CategoryByID(id)
	}
	label, _ := cmd.Flags().GetString("category")
	return core.CategoryByLabel(label)
}

// patchFromFlags builds a patch from the flags set on the command line.
func patchFromFlags(cmd *cobra.Command) (core.TransactionPatch, error) {
	var p core.TransactionPatch
	flags := cmd.Flags()

	if flags.Changed("kind") {
		s, _ := flags.GetString("kind")
		kind := core.TransactionKind(s)
		p.Kind = &kind
	}
	if flags.Changed("amount") {
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return p, err
		}
		p.Amount = &amount
	}
	if flags.Changed("date") {
		date, err := dateFlag(cmd, "date")
		if err != nil {
			return p, err
		}
		p.Date = &date
	}
	if flags.Changed("category-id") || flags.Changed("category") {
		ref := categoryFromFlags(cmd)
		p.Category = &ref
	}
	if flags.Changed("note") {
		note, _ := flags.GetString("note")
		p.Note = &note
	}
	if flags.Changed("planned") {
		planned, _ := flags.GetBool("planned")
		p.Planned = &planned
	}
	if flags.Changed("account") {
		id, _ := flags.GetInt64("account")
		p.AccountID = &id
	}
	if flags.Changed("card") {
		id, _ := flags.GetInt64("card")
		p.CardID = &id
	}
	if flags.Changed("status") {
		s, _ := flags.GetString("status")
		status := core.TransactionStatus(s)
		p.Status = &status
	}
	return p, nil
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txAddCmd, txListCmd, txUpdateCmd, txDeleteCmd, txGroupCmd)

	for _, c := range []*cobra.Command{txAddCmd, txUpdateCmd} {
		c.Flags().String("kind", string(core.Expense), "income or expense")
		c.Flags().String("amount", "", "Amount per installment, e.g. 12.50")
		c.Flags().String("date", "", "Date as YYYY-MM-DD (default today)")
		c.Flags().Int64("category-id", 0, "Catalog category id")
		c.Flags().String("category", "", "Free-text category label")
		c.Flags().String("note", "", "Note")
		c.Flags().Bool("planned", false, "Budget line instead of a realized entry")
		c.Flags().Int64("account", 0, "Account id (0 clears on update)")
		c.Flags().Int64("card", 0, "Card id (0 clears on update)")
	}
	txAddCmd.Flags().Int("installments", 1, "Number of monthly installments")
	txAddCmd.MarkFlagRequired("amount")
	txUpdateCmd.Flags().String("status", "", "pending or paid")

	txListCmd.Flags().String("month", "", "Month as YYYY-MM (default current)")
	txListCmd.Flags().Bool("planned", false, "List budget lines instead of realized entries")
}
