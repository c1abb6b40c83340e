package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	applog "ledger/internal/log"
)

// ErrInvalid marks configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Database
	DBPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Budget and charts
	BudgetAttentionPercent float64
	DailySeriesDays        int
}

func Load() *Config {
	return &Config{
		DBPath: getEnv("LEDGER_DB_PATH", "./data/ledger.db"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		BudgetAttentionPercent: getEnvFloat("BUDGET_ATTENTION_PERCENT", 90),
		DailySeriesDays:        getEnvInt("DAILY_SERIES_DAYS", 7),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if c.BudgetAttentionPercent <= 0 || c.BudgetAttentionPercent >= 100 {
		errors = append(errors, fmt.Sprintf("invalid budget attention percent %v: must be between 0 and 100 (exclusive)", c.BudgetAttentionPercent))
	}

	if c.DailySeriesDays < 1 {
		errors = append(errors, fmt.Sprintf("invalid daily series days %d: must be at least 1", c.DailySeriesDays))
	} else if c.DailySeriesDays > 366 {
		errors = append(errors, fmt.Sprintf("invalid daily series days %d: must be at most 366", c.DailySeriesDays))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%w: configuration validation failed:\n- %s", ErrInvalid, strings.Join(errors, "\n- "))
	}

	return nil
}

// LoggerConfig derives the logger configuration. Validate must pass first.
func (c *Config) LoggerConfig() applog.Config {
	cfg := applog.DefaultConfig()
	if level, err := applog.ParseLevel(c.LogLevel); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.LogFormat
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
