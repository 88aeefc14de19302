package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "vigor.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE logs (id TEXT PRIMARY KEY, kind TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO logs (id, kind) VALUES ('l-1', 'exercise')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func countLogs(t *testing.T, dbPath string) int {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&n); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestCreateAndList(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	if countLogs(t, path) != 1 {
		t.Error("snapshot does not contain the source data")
	}

	snapshots, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapshots))
	}
	if snapshots[0].Path != path {
		t.Errorf("listed path %s, want %s", snapshots[0].Path, path)
	}
	if snapshots[0].Size == 0 {
		t.Error("expected non-zero snapshot size")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing source database")
	}
}

func TestListEmptyDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "vigor.db"))
	snapshots, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snapshots))
	}
}

func TestCollidingTimestampsGetUniqueNames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct snapshot paths for back-to-back snapshots")
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	snapshot, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutate the live database, then restore the snapshot.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("DELETE FROM logs"); err != nil {
		t.Fatalf("failed to delete rows: %v", err)
	}
	db.Close()

	if err := mgr.Restore(snapshot); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if countLogs(t, dbPath) != 1 {
		t.Error("restore did not bring back the snapshotted data")
	}

	// The pre-restore state was snapshotted too.
	snapshots, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshots) < 2 {
		t.Errorf("expected a pre-restore snapshot, got %d total", len(snapshots))
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := mgr.Restore(garbage); err == nil {
		t.Error("expected invalid snapshot to be rejected")
	}
	if countLogs(t, dbPath) != 1 {
		t.Error("failed restore must not touch the live database")
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	// Seed more snapshots than the retention limit with distinct stamps.
	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for i := range MaxSnapshots + 3 {
		stamp := string([]byte{byte('0' + i/10), byte('0' + i%10)})
		name := filepath.Join(mgr.Dir(), filePrefix+"20260101-0000"+stamp+fileSuffix)
		if err := copyFile(dbPath, name); err != nil {
			t.Fatalf("failed to seed snapshot: %v", err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	snapshots, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snapshots) != MaxSnapshots {
		t.Errorf("expected rotation down to %d snapshots, got %d", MaxSnapshots, len(snapshots))
	}
}
