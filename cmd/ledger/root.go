package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
	applog "ledger/internal/log"
)

var version = "0.1.0"

var (
	app    *cli.App
	logger *applog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Offline personal finance ledger",
	Long: `ledger records income and expenses, credit card charges and
installment purchases in a local SQLite file, and derives account
balances, card invoices, budgets and investment returns from them.

Configuration is read from the environment (and a .env file):
  LEDGER_DB_PATH            - SQLite file (default ./data/ledger.db)
  LOG_LEVEL                 - debug, info, warn, error (default info)
  LOG_FORMAT                - text or json (default text)
  BUDGET_ATTENTION_PERCENT  - budget usage flagged for attention (default 90)
  DAILY_SERIES_DAYS         - days in the daily spending chart (default 7)`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStore(cmd) {
			return nil
		}
		cli.LoadEnvFile()

		dbPath, _ := cmd.Flags().GetString("db")
		cfg, err := cli.LoadAndValidateConfig(dbPath)
		if err != nil {
			return err
		}
		logger = cli.SetupLogger(cfg)
		cmd.SetContext(applog.WithContext(cmd.Context(), logger))

		store, err := cli.OpenStore(cmd.Context(), logger, cfg.DBPath)
		if err != nil {
			return err
		}
		app = cli.NewApp(cfg, store, time.Now)
		return nil
	},
}

// needsStore reports whether cmd works on the ledger. Help and shell
// completion must not open the database or run migrations.
func needsStore(cmd *cobra.Command) bool {
	if cmd == cmd.Root() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, cancel := cli.SignalContext(applog.Default().WithComponent(applog.ComponentCLI))
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if logger == nil {
		logger = applog.Default().WithComponent(applog.ComponentCLI)
	}
	if app != nil {
		if cerr := app.Close(); cerr != nil {
			logger.Fields(ctx, slog.LevelError, "Failed to close record store", applog.NewFields().
				WithOperation(applog.OpShutdown).
				WithError(cerr).
				WithErrorType(applog.ErrorTypeDatabase))
		}
	}
	if err != nil {
		logger.Fields(ctx, slog.LevelDebug, "Command execution failed", applog.NewFields().
			WithError(err).
			WithErrorType(cli.ErrorType(err)))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite file, overrides LEDGER_DB_PATH")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
}
