package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage credit cards",
}

var cardAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Create a credit card",
	Example: `  ledger card add "Visa" --limit 5000 --closing-day 10 --due-day 20`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		card := core.Card{Name: args[0]}
		if err := cardFromFlags(cmd, &card); err != nil {
			return err
		}
		created, err := app.Catalog.CreateCard(cmd.Context(), card)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created card %d (%s)\n", created.ID, created.Name)
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := app.Catalog.ListCards(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, cards, func(w io.Writer) {
			row(w, "ID", "NAME", "LIMIT", "CLOSING", "DUE", "DESCRIPTION")
			for _, c := range cards {
				row(w, c.ID, c.Name, c.CreditLimit, c.ClosingDay, c.DueDay, c.Description)
			}
		})
	},
}

var cardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		card, err := app.Store.GetCard(cmd.Context(), id)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			card.Name, _ = cmd.Flags().GetString("name")
		}
		if err := cardFromFlags(cmd, &card); err != nil {
			return err
		}
		updated, err := app.Catalog.UpdateCard(cmd.Context(), card)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated card %d (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card without transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Catalog.DeleteCard(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %d\n", id)
		return nil
	},
}

// cardFromFlags copies the card flags that were set on the command line.
func cardFromFlags(cmd *cobra.Command, card *core.Card) error {
	flags := cmd.Flags()
	if flags.Changed("description") {
		card.Description, _ = flags.GetString("description")
	}
	if flags.Changed("limit") {
		limit, err := signedFlag(cmd, "limit")
		if err != nil {
			return err
		}
		card.CreditLimit = limit
	}
	if flags.Changed("closing-day") || card.ClosingDay == 0 {
		card.ClosingDay, _ = flags.GetInt("closing-day")
	}
	if flags.Changed("due-day") || card.DueDay == 0 {
		card.DueDay, _ = flags.GetInt("due-day")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardAddCmd, cardListCmd, cardUpdateCmd, cardDeleteCmd)

	for _, c := range []*cobra.Command{cardAddCmd, cardUpdateCmd} {
		c.Flags().String("description", "", "Free-text description")
		c.Flags().String("limit", "0", "Credit limit")
		c.Flags().Int("closing-day", 1, "Day of month the invoice closes (1-31)")
		c.Flags().Int("due-day", 10, "Day of month the invoice is due (1-31)")
	}
	cardUpdateCmd.Flags().String("name", "", "New name")
}
