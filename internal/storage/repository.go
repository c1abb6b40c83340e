package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ledger/internal/core"
	applog "ledger/internal/log"

	_ "modernc.org/sqlite"
)

const timestampLayout = time.RFC3339Nano

// SQLiteRepository is the record store. A repository returned by InTx shares
// the connection of its parent and routes every statement through the open
// transaction.
type SQLiteRepository struct {
	db      *sql.DB
	tx      *sql.Tx
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Single connection: every read observes every completed write.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.tx != nil {
		return errors.New("close called on a transaction-scoped repository")
	}
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InTx runs fn as one unit of work: either every write made through the
// repository passed to fn commits, or none does. Nested calls join the
// outer transaction.
func (r *SQLiteRepository) InTx(ctx context.Context, fn func(tx *SQLiteRepository) error) error {
	if r.tx != nil {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	scoped := &SQLiteRepository{db: r.db, tx: tx, queries: r.queries.WithTx(tx)}
	if err := fn(scoped); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logFor(ctx).ErrorContext(ctx, "Rollback failed",
				applog.FieldError, rbErr,
				applog.FieldErrorType, applog.ErrorTypeDatabase)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// logFor returns the storage logger carried by ctx.
func logFor(ctx context.Context) *applog.Logger {
	return applog.FromContext(ctx).WithComponent(applog.ComponentStorage)
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, core.ErrNotFound)
}

// wrapGet maps sql.ErrNoRows to core.ErrNotFound and wraps anything else.
func wrapGet(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity, id)
	}
	return fmt.Errorf("get %s %d: %w", entity, id, err)
}

// formatTimestamp keeps the wall clock and offset of t, so the calendar day
// read back is the day the user saw.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(timestampLayout)
}

// parseTimestamp accepts our own layout and SQLite's CURRENT_TIMESTAMP format.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{timestampLayout, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func nullDate(d core.Date) sql.NullString {
	if d.IsEmpty() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func parseNullDate(s sql.NullString) (core.Date, error) {
	if !s.Valid || s.String == "" {
		return core.Date{}, nil
	}
	return core.ParseDate(s.String)
}
