package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage income and expense categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Example: `  ledger category add Groceries --kind expense --icon cart --color "#2e7d32"
  ledger category add "Wedding gift" --kind expense --one-off`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		icon, _ := cmd.Flags().GetString("icon")
		color, _ := cmd.Flags().GetString("color")
		oneOff, _ := cmd.Flags().GetBool("one-off")
		created, err := app.Catalog.CreateCategory(cmd.Context(), core.Category{
			Name: args[0], Kind: core.TransactionKind(kind), Icon: icon, Color: color, Permanent: !oneOff,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created category %d (%s)\n", created.ID, created.Name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories offered for new entries in a month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var (
			cats []core.Category
			err  error
		)
		if all, _ := cmd.Flags().GetBool("all"); all {
			cats, err = app.Catalog.ListCategories(ctx)
		} else {
			month, merr := monthFlag(cmd, "month")
			if merr != nil {
				return merr
			}
			kind, _ := cmd.Flags().GetString("kind")
			cats, err = app.Catalog.ActiveCategories(ctx, core.TransactionKind(kind), month)
		}
		if err != nil {
			return err
		}
		return render(cmd, cats, func(w io.Writer) {
			row(w, "ID", "NAME", "KIND", "ICON", "COLOR", "PERMANENT", "ARCHIVED")
			for _, c := range cats {
				row(w, c.ID, c.Name, c.Kind, c.Icon, c.Color, c.Permanent, c.Archived)
			}
		})
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change name, icon, color or permanence of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		cat, err := app.Store.GetCategory(ctx, id)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			cat.Name, _ = flags.GetString("name")
		}
		if flags.Changed("icon") {
			cat.Icon, _ = flags.GetString("icon")
		}
		if flags.Changed("color") {
			cat.Color, _ = flags.GetString("color")
		}
		if flags.Changed("one-off") {
			oneOff, _ := flags.GetBool("one-off")
			cat.Permanent = !oneOff
		}
		updated, err := app.Catalog.UpdateCategory(ctx, cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated category %d (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

var categoryArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Hide a category from new entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Catalog.ArchiveCategory(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Archived category %d\n", id)
		return nil
	},
}

var categoryUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <id>",
	Short: "Offer an archived category again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args[0])
		if err != nil {
			return err
		}
		if err := app.Catalog.UnarchiveCategory(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored category %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd, categoryUpdateCmd, categoryArchiveCmd, categoryUnarchiveCmd)

	categoryAddCmd.Flags().String("kind", string(core.Expense), "income or expense")
	categoryAddCmd.Flags().String("icon", "", "Icon name")
	categoryAddCmd.Flags().String("color", "", "Display color")
	categoryAddCmd.Flags().Bool("one-off", false, "Only offer the category in the current month")

	categoryListCmd.Flags().String("kind", string(core.Expense), "income or expense")
	categoryListCmd.Flags().String("month", "", "Month as YYYY-MM (default current)")
	categoryListCmd.Flags().Bool("all", false, "List every category, archived included")

	categoryUpdateCmd.Flags().String("name", "", "New name")
	categoryUpdateCmd.Flags().String("icon", "", "Icon name")
	categoryUpdateCmd.Flags().String("color", "", "Display color")
	categoryUpdateCmd.Flags().Bool("one-off", false, "Only offer the category in its creation month")
}
