package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"ledger/internal/config"
	"ledger/internal/core"
	applog "ledger/internal/log"
)

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("LEDGER_DB_PATH", filepath.Join(t.TempDir(), "ledger.db"))
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadAndValidateConfig("")
	if err != nil {
		t.Fatalf("LoadAndValidateConfig() error = %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
	}

	override := filepath.Join(t.TempDir(), "other.db")
	cfg, err = LoadAndValidateConfig(override)
	if err != nil {
		t.Fatalf("LoadAndValidateConfig(override) error = %v", err)
	}
	if cfg.DBPath != override {
		t.Errorf("DBPath = %v, want %v", cfg.DBPath, override)
	}

	t.Setenv("LOG_FORMAT", "yaml")
	if _, err := LoadAndValidateConfig(""); err == nil {
		t.Error("expected validation error for unknown log format")
	}
}

func TestNewApp(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DBPath:                 filepath.Join(t.TempDir(), "ledger.db"),
		LogLevel:               "error",
		LogFormat:              "text",
		BudgetAttentionPercent: 90,
		DailySeriesDays:        7,
	}
	logger := SetupLogger(cfg)

	store, err := OpenStore(ctx, logger, cfg.DBPath)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	now := func() time.Time { return time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC) }
	app := NewApp(cfg, store, now)
	defer app.Close()

	acc, err := app.Catalog.CreateAccount(ctx, core.Account{Name: "Cash", Kind: core.Wallet, OpeningBalance: core.Money{Cents: 1000}})
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}

	d, err := app.Aggregator.Dashboard(ctx, core.DateOf(app.Now()))
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if d.WalletTotal.Cents != 1000 {
		t.Errorf("WalletTotal = %d, want 1000 for account %d", d.WalletTotal.Cents, acc.ID)
	}

	series, err := app.Aggregator.DailySpending(ctx, d.Date)
	if err != nil {
		t.Fatalf("DailySpending() error = %v", err)
	}
	if len(series) != cfg.DailySeriesDays {
		t.Errorf("len(series) = %d, want %d", len(series), cfg.DailySeriesDays)
	}
}

func TestSignalContextCancel(t *testing.T) {
	logger := SetupLogger(&config.Config{LogLevel: "error", LogFormat: "text"})
	ctx, cancel := SignalContext(logger)
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"configuration", fmt.Errorf("load: %w", config.ErrInvalid), applog.ErrorTypeConfiguration},
		{"not found", fmt.Errorf("account 9: %w", core.ErrNotFound), applog.ErrorTypeNotFound},
		{"in use", core.ErrInUse, applog.ErrorTypeConflict},
		{"already paid", core.ErrAlreadyPaid, applog.ErrorTypeConflict},
		{"validation", fmt.Errorf("--amount: %w", core.ErrInvalidAmount), applog.ErrorTypeValidation},
		{"archived", core.ErrCategoryArchived, applog.ErrorTypeValidation},
		{"driver", errors.New("database is locked"), applog.ErrorTypeDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorType(tt.err); got != tt.want {
				t.Errorf("ErrorType() = %v, want %v", got, tt.want)
			}
		})
	}
}
