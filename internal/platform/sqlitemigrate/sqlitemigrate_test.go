package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyRecordsAndSkipsApplied(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	files := fstest.MapFS{
		"migrations/001_items.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE items (id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"migrations/002_tags.sql":  {Data: []byte("-- +migrate Up\nCREATE TABLE tags (id INTEGER PRIMARY KEY);")},
		"migrations/README.md":     {Data: []byte("ignored")},
	}

	applied, err := Apply(context.Background(), db, files, "migrations")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 2 || applied[0] != "001_items.sql" || applied[1] != "002_tags.sql" {
		t.Fatalf("unexpected applied list: %v", applied)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('items','tags')`); got != 2 {
		t.Fatalf("expected both tables, got %d", got)
	}

	again, err := Apply(context.Background(), db, files, "migrations")
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no migrations on replay, got %v", again)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM schema_migrations`); got != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", got)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	bad := fstest.MapFS{"001_bad.sql": {Data: []byte("-- +migrate Up\nCREAT TABLE nope (id INT);")}}
	if _, err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatalf("expected bad migration to fail")
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM schema_migrations`); got != 0 {
		t.Fatalf("expected failed migration unrecorded, got %d", got)
	}
}

func TestApplyToleratesExistingTables(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	if _, err := db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("seed table: %v", err)
	}
	files := fstest.MapFS{"001_items.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY);")}}
	if _, err := Apply(context.Background(), db, files, "."); err != nil {
		t.Fatalf("apply over existing table: %v", err)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	t.Parallel()
	if _, err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatalf("expected nil db error")
	}
}

func TestExtractUp(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"CREATE TABLE a(id INT);":                                "CREATE TABLE a(id INT);",
		"-- +migrate Up\nCREATE TABLE a(id INT);":                "\nCREATE TABLE a(id INT);",
		"-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;": "\nSELECT 1;\n",
	}
	for in, want := range cases {
		if got := ExtractUp(in); got != want {
			t.Fatalf("ExtractUp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsAlreadyExists(t *testing.T) {
	t.Parallel()
	if !IsAlreadyExists(errors.New("table items already exists")) {
		t.Fatalf("expected already exists")
	}
	if IsAlreadyExists(errors.New("syntax error")) {
		t.Fatalf("unexpected already exists")
	}
}
