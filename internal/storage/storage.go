// Package storage opens the local SQLite database and brings its schema up
// to date: embedded goose migrations first, then explicit reconciliation of
// todo columns that releases without versioned migrations did not create.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/todokeeper/internal/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the database at path and returns a
// handle with the schema fully migrated. The caller owns the handle and
// must Close it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := reconcileTodoColumns(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("reconcile todos schema: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded goose migrations. Safe to call on an
// already-migrated database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Columns a pre-migration release's todos table is missing, with the DDL
// that adds each one.
var legacyTodoColumns = []struct {
	name string
	ddl  string
}{
	{"status", `ALTER TABLE todos ADD COLUMN status TEXT NOT NULL DEFAULT 'pending'`},
	{"due_time", `ALTER TABLE todos ADD COLUMN due_time TEXT DEFAULT NULL`},
	{"completed_date", `ALTER TABLE todos ADD COLUMN completed_date TEXT DEFAULT NULL`},
	{"priority", `ALTER TABLE todos ADD COLUMN priority TEXT NOT NULL DEFAULT 'medium'`},
}

// reconcileTodoColumns adds the columns missing from a legacy todos table.
// On such a database the initial migration's CREATE TABLE IF NOT EXISTS
// no-ops, so the table is inspected through the catalog and each absent
// column is added individually. Every failure is reported; existing rows
// pick up the column defaults.
func reconcileTodoColumns(ctx context.Context, db *sql.DB) error {
	existing, err := tableColumns(ctx, db, "todos")
	if err != nil {
		return err
	}

	for _, col := range legacyTodoColumns {
		if existing[col.name] {
			continue
		}
		if _, err := db.ExecContext(ctx, col.ddl); err != nil {
			return fmt.Errorf("add column %s: %w", col.name, err)
		}
	}
	return nil
}

// tableColumns returns the set of column names of table, per
// PRAGMA table_info.
func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return nil, fmt.Errorf("table_info(%s): %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info(%s): %w", table, err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
