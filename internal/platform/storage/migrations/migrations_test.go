package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"hypersomnia/internal/platform/sqlitedb"
	"hypersomnia/internal/platform/sqlitemigrate"
	"hypersomnia/internal/platform/storage/migrations"
)

func TestSchemaCreatesTablesAndIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "schema.db"), sqlitedb.Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = h.Close() }()
	db, _ := h.DB()

	applied, err := sqlitemigrate.Apply(ctx, db, migrations.FS, migrations.Root)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) == 0 {
		t.Fatalf("expected migrations on empty database")
	}
	if again, err := sqlitemigrate.Apply(ctx, db, migrations.FS, migrations.Root); err != nil || len(again) != 0 {
		t.Fatalf("expected idempotent replay, applied=%v err=%v", again, err)
	}

	for _, table := range []string{"Players", "Levels", "PlayerProgress", "UserSettings"} {
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n); err != nil {
			t.Fatalf("lookup %s: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestProgressCascadesWithPlayer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "cascade.db"), sqlitedb.Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = h.Close() }()
	db, _ := h.DB()
	if _, err := sqlitemigrate.Apply(ctx, db, migrations.FS, migrations.Root); err != nil {
		t.Fatalf("apply: %v", err)
	}

	stmts := []string{
		`INSERT INTO Players (id, playerName, creationDate, lastPlayedDate) VALUES (1, 'ana', 0, 0)`,
		`INSERT INTO Levels (id, levelName, sceneName, "order") VALUES (1, 'one', 'Lvl1', 1)`,
		`INSERT INTO PlayerProgress (playerId, levelId, isUnlocked) VALUES (1, 1, 1)`,
		`INSERT INTO UserSettings (playerId) VALUES (1)`,
		`DELETE FROM Players WHERE id = 1`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	var n int
	if err := db.QueryRow(`SELECT (SELECT COUNT(*) FROM PlayerProgress) + (SELECT COUNT(*) FROM UserSettings)`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected cascade delete, %d rows remain", n)
	}
	if _, err := db.Exec(`INSERT INTO PlayerProgress (playerId, levelId) VALUES (99, 1)`); err == nil {
		t.Fatalf("expected foreign key violation")
	}
}
