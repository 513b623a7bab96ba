package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestXDG points XDG env vars at a temp directory for isolated tests.
func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	return tmpDir
}

func TestGetPaths(t *testing.T) {
	paths := GetPaths()

	if paths.ConfigDir == "" || paths.DataDir == "" {
		t.Fatal("paths should not be empty")
	}
	if paths.ConfigFile == "" || paths.DBFile == "" {
		t.Fatal("file paths should not be empty")
	}
}

func TestGetPathsRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/testxdg/config")
	t.Setenv("XDG_DATA_HOME", "/tmp/testxdg/data")

	paths := GetPaths()

	if paths.ConfigDir != "/tmp/testxdg/config/prio" {
		t.Fatalf("expected /tmp/testxdg/config/prio, got %s", paths.ConfigDir)
	}
	if paths.DataDir != "/tmp/testxdg/data/prio" {
		t.Fatalf("expected /tmp/testxdg/data/prio, got %s", paths.DataDir)
	}
}

func TestLoad_MissingFileGivesZeroConfig(t *testing.T) {
	setupTestXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Weights.Importance != nil || cfg.Weights.Urgency != nil || cfg.Weights.Effort != nil {
		t.Fatal("missing config should leave weights unset")
	}
	if cfg.Plan.DailyHours != nil {
		t.Fatal("missing config should leave daily hours unset")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setupTestXDG(t)

	cfg := &Config{}
	cfg.User.Name = "sam"
	cfg.Weights.Importance = FloatPtr(1.5)
	cfg.Weights.Effort = FloatPtr(0)
	cfg.Plan.DailyHours = FloatPtr(6)

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.User.Name != "sam" {
		t.Errorf("expected name 'sam', got %q", got.User.Name)
	}
	if got.Weights.Importance == nil || *got.Weights.Importance != 1.5 {
		t.Errorf("importance weight lost: %+v", got.Weights)
	}
	// An explicit zero must survive the round trip — it disables a factor.
	if got.Weights.Effort == nil || *got.Weights.Effort != 0 {
		t.Errorf("explicit zero effort weight lost: %+v", got.Weights)
	}
	if got.Weights.Urgency != nil {
		t.Errorf("unset urgency weight should stay nil, got %v", *got.Weights.Urgency)
	}
	if got.Plan.DailyHours == nil || *got.Plan.DailyHours != 6 {
		t.Errorf("daily hours lost: %+v", got.Plan)
	}
}

func TestEnsureDirs(t *testing.T) {
	setupTestXDG(t)

	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}
	for _, d := range []string{paths.ConfigDir, paths.DataDir} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Fatalf("directory %s not created: %v", d, err)
		}
	}
}
