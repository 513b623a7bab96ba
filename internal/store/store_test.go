package store

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestXDG sets XDG env vars to a temp directory for isolated testing.
func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	return tmpDir
}

func TestOpenAndClose(t *testing.T) {
	tmpDir := setupTestXDG(t)

	db, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Conn() == nil {
		t.Fatal("Conn() returned nil")
	}

	dbPath := filepath.Join(tmpDir, "prio", "prio.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database file not created at %s: %v", dbPath, err)
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	setupTestXDG(t)

	db, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"tasks", "migrations"} {
		var name string
		err := db.Conn().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	setupTestXDG(t)

	// Open twice: the second run replays every migration, including the
	// ALTER TABLE ones, against the existing schema.
	db, err := Open()
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	db.Close()

	db, err = Open()
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	// The category column added by ALTER must exist exactly once.
	rows, err := db.Conn().Query(`SELECT category FROM tasks LIMIT 1`)
	if err != nil {
		t.Fatalf("category column missing: %v", err)
	}
	rows.Close()
}
