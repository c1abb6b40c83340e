// Package cli provides the bootstrap shared by the ledger commands:
// environment, configuration, logging and the record store.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ledger/internal/config"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// SetupLogger builds the logger described by cfg and installs it as the
// process default, so every component logger derives from it.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logger := applog.New(cfg.LoggerConfig()).WithComponent(applog.ComponentCLI)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local use.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and validates
// it. A non-empty dbPath overrides LEDGER_DB_PATH.
func LoadAndValidateConfig(dbPath string) (*config.Config, error) {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore opens the SQLite record store at dbPath, applying pending
// migrations.
func OpenStore(ctx context.Context, logger *applog.Logger, dbPath string) (*storage.SQLiteRepository, error) {
	store, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to open record store", applog.FieldError, err, applog.FieldDBPath, dbPath)
		return nil, fmt.Errorf("open store: %w", err)
	}

	version, dirty, err := store.SchemaVersion(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	logger.Debug("Record store ready",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldDBPath, dbPath,
		applog.FieldVersion, version,
		"dirty", dirty)
	return store, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received",
				applog.FieldOperation, applog.OpShutdown,
				"signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
