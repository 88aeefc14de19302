package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := make(fstest.MapFS, len(files))
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestGetCurrentVersionFreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 for fresh database, got %d", version)
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_initial.sql": "CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		"002_indexes.sql": "CREATE INDEX idx_widgets_id ON widgets (id);",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// A second run is a no-op.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("re-running ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on re-run, got %d", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_initial.sql": "CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		"002_broken.sql":  "THIS IS NOT SQL;",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected broken migration to fail")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version to stay at 1 after failed migration, got %d", version)
	}
}

func TestInvalidMigrationFilenames(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing separator", map[string]string{"001.sql": "SELECT 1;"}},
		{"non-numeric version", map[string]string{"abc_test.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_test.sql": "SELECT 1;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, migrationFS(tt.files))
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("expected filename validation error")
			}
		})
	}
}

func TestDuplicateVersionsRejected(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_a.sql": "SELECT 1;",
		"001_b.sql": "SELECT 1;",
	}))

	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected duplicate version error")
	} else if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate version error, got: %v", err)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	files := migrationFS(map[string]string{
		"001_initial.sql": "CREATE TABLE widgets (id TEXT PRIMARY KEY);",
	})

	runner := NewRunner(db, files)
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected out-of-date error before migrating")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected valid version after migrating, got: %v", err)
	}

	// A database from a newer release is rejected.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected newer-than-supported error")
	}
}
