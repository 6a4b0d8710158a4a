// Package storagetest opens migrated throwaway databases for package tests.
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"hypersomnia/internal/platform/sqlitedb"
	"hypersomnia/internal/platform/sqlitemigrate"
	"hypersomnia/internal/platform/storage/migrations"
	"hypersomnia/internal/platform/tx"
)

// Open returns a handle on a fresh schema under t.TempDir, closed on cleanup.
func Open(t testing.TB) *sqlitedb.Handle {
	t.Helper()
	ctx := context.Background()
	h, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "HypersomniaDB.db"), sqlitedb.Options{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	db, err := h.DB()
	if err != nil {
		t.Fatalf("test db: %v", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, db, migrations.FS, migrations.Root); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return h
}

// OpenWithTx also returns a transaction manager bound to the handle.
func OpenWithTx(t testing.TB) (*sqlitedb.Handle, *tx.SQLiteManager) {
	t.Helper()
	h := Open(t)
	return h, tx.NewSQLiteManager(h, nil)
}

// Exec runs raw statements against the handle, failing the test on error.
func Exec(t testing.TB, h *sqlitedb.Handle, stmts ...string) {
	t.Helper()
	db, err := h.DB()
	if err != nil {
		t.Fatalf("test db: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}

// Count returns the single integer produced by query.
func Count(t testing.TB, h *sqlitedb.Handle, query string, args ...any) int {
	t.Helper()
	db, err := h.DB()
	if err != nil {
		t.Fatalf("test db: %v", err)
	}
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}
