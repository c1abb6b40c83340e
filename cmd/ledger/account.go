package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage wallet and voucher accounts",
}

var accountAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an account",
	Example: `  ledger account add "Checking" --kind wallet --opening 1250.00
  ledger account add "Ticket" --kind meal_voucher`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		opening, err := signedFlag(cmd, "opening")
		if err != nil {
			return err
		}
		acc, err := app.Catalog.CreateAccount(cmd.Context(), core.Account{
			Name: args[0], Kind: core.AccountKind(kind), OpeningBalance: opening,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created account %d (%s)\n", acc.ID, acc.Name)
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with their balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		balances, err := app.Aggregator.AccountsWithBalance(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, balances, func(w io.Writer) {
			row(w, "ID", "NAME", "KIND", "OPENING", "BALANCE", "CREATED")
			for _, b := range balances {
				row(w, b.Account.ID, b.Account.Name, b.Account.Kind, b.Account.OpeningBalance, b.Balance, formatTime(b.Account.CreatedAt))
			}
		})
	},
}

var accountBalanceCmd = &cobra.Command{
	Use:   "balance <id>",
	Short: "Show the balance of one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		b, err := app.Aggregator.AccountBalance(cmd.Context(), id)
		if err != nil {
			return err
		}
		return render(cmd, b, func(w io.Writer) {
			row(w, b.Account.Name, b.Balance)
		})
	},
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename an account or change its opening balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		current, err := app.Store.GetAccount(ctx, id)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			current.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("opening") {
			if current.OpeningBalance, err = signedFlag(cmd, "opening"); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("kind") {
			kind, _ := cmd.Flags().GetString("kind")
			current.Kind = core.AccountKind(kind)
		}
		acc, err := app.Catalog.UpdateAccount(ctx, current)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated account %d (%s)\n", acc.ID, acc.Name)
		return nil
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account without transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Catalog.DeleteAccount(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountAddCmd, accountListCmd, accountBalanceCmd, accountUpdateCmd, accountDeleteCmd)

	accountAddCmd.Flags().String("kind", string(core.Wallet), "Account kind (wallet, meal_voucher, food_voucher)")
	accountAddCmd.Flags().String("opening", "0", "Opening balance, may be negative")

	accountUpdateCmd.Flags().String("name", "", "New name")
	accountUpdateCmd.Flags().String("opening", "", "New opening balance")
	accountUpdateCmd.Flags().String("kind", "", "Kind (cannot change after creation)")
}
