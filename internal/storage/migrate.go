package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	applog "ledger/internal/log"
)

// SchemaVersionTable records the applied migration version.
const SchemaVersionTable = "schema_version"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending up migration in order. Each migration
// runs in its own transaction and only ever adds tables or columns.
func RunMigrations(dbPath string) error {
	// Separate connection: the migrate driver closes its database on Close.
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{MigrationsTable: SchemaVersionTable})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	applog.Default().WithComponent(applog.ComponentStorage).Debug("Migrations applied",
		applog.FieldOperation, applog.OpMigrate,
		applog.FieldVersion, version,
		"dirty", dirty)
	return nil
}

// SchemaVersion returns the last applied migration and whether it was left
// half-applied.
func (r *SQLiteRepository) SchemaVersion(ctx context.Context) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := r.queries.db.QueryRowContext(ctx,
		"SELECT version, dirty FROM "+SchemaVersionTable+" LIMIT 1").Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}
