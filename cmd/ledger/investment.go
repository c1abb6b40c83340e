package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var investmentCmd = &cobra.Command{
	Use:     "investment",
	Aliases: []string{"inv"},
	Short:   "Track fixed-income investments",
}

var investmentAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Record an investment",
	Example: `  ledger investment add "Bond 2027" --principal 1000 --rate 12.5 --start 2025-01-01`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := core.Investment{Name: args[0]}
		if err := investmentFromFlags(cmd, &inv); err != nil {
			return err
		}
		created, err := app.Investments.Create(cmd.Context(), inv)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created investment %d (%s)\n", created.ID, created.Name)
		return nil
	},
}

var investmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List investments with returns accrued at a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := dateFlag(cmd, "as-of")
		if err != nil {
			return err
		}
		rows, err := app.Investments.ListWithReturns(cmd.Context(), asOf)
		if err != nil {
			return err
		}
		return render(cmd, rows, func(w io.Writer) {
			row(w, "ID", "NAME", "PRINCIPAL", "RATE", "START", "RETURNS", "VALUE")
			for _, r := range rows {
				inv := r.Investment
				row(w, inv.ID, inv.Name, inv.Principal, rate(inv.AnnualRate), startDate(inv.StartDate), r.Returns, r.Value)
			}
		})
	},
}

var investmentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an investment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		inv, err := app.Store.GetInvestment(cmd.Context(), id)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			inv.Name, _ = cmd.Flags().GetString("name")
		}
		if err := investmentFromFlags(cmd, &inv); err != nil {
			return err
		}
		updated, err := app.Investments.Update(cmd.Context(), inv)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated investment %d (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

var investmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an investment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Investments.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted investment %d\n", id)
		return nil
	},
}

// investmentFromFlags copies the investment flags that were set. An empty
// --rate or --start clears the value.
func investmentFromFlags(cmd *cobra.Command, inv *core.Investment) error {
	flags := cmd.Flags()
	if flags.Changed("principal") {
		p, err := signedFlag(cmd, "principal")
		if err != nil {
			return err
		}
		inv.Principal = p
	}
	if flags.Changed("rate") {
		s, _ := flags.GetString("rate")
		inv.AnnualRate = decimal.NullDecimal{}
		if s != "" {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return fmt.Errorf("--rate %q: %w", s, err)
			}
			inv.AnnualRate = decimal.NewNullDecimal(d)
		}
	}
	if flags.Changed("start") {
		s, _ := flags.GetString("start")
		inv.StartDate = core.Date{}
		if s != "" {
			d, err := core.ParseDate(s)
			if err != nil {
				return err
			}
			inv.StartDate = d
		}
	}
	if flags.Changed("notes") {
		inv.Notes, _ = flags.GetString("notes")
	}
	return nil
}

func rate(r decimal.NullDecimal) string {
	if !r.Valid {
		return "-"
	}
	return r.Decimal.String() + "%"
}

func startDate(d core.Date) string {
	if d.IsEmpty() {
		return "-"
	}
	return d.String()
}

func init() {
	rootCmd.AddCommand(investmentCmd)
	investmentCmd.AddCommand(investmentAddCmd, investmentListCmd, investmentUpdateCmd, investmentDeleteCmd)

	for _, c := range []*cobra.Command{investmentAddCmd, investmentUpdateCmd} {
		c.Flags().String("principal", "0", "Invested amount")
		c.Flags().String("rate", "", "Annual rate in percent, e.g. 12.5")
		c.Flags().String("start", "", "Start date as YYYY-MM-DD")
		c.Flags().String("notes", "", "Notes")
	}
	investmentAddCmd.MarkFlagRequired("principal")
	investmentUpdateCmd.Flags().String("name", "", "New name")

	investmentListCmd.Flags().String("as-of", "", "Valuation date as YYYY-MM-DD (default today)")
}
