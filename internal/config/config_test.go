package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `listen_addr: ":8080"
database:
  path: /var/lib/minifigdb/minifigs.db
seed_demo: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, loadedPath, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loadedPath != path {
		t.Fatalf("expected path %s, got %s", path, loadedPath)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.ListenAddr)
	}
	if cfg.Database.Path != "/var/lib/minifigdb/minifigs.db" {
		t.Fatalf("unexpected database path %s", cfg.Database.Path)
	}
	if !cfg.SeedDemo {
		t.Fatalf("expected seed_demo true")
	}
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":3000" {
		t.Fatalf("expected default listen addr, got %s", cfg.ListenAddr)
	}
	if cfg.Database.Path != "./minifigdb.db" {
		t.Fatalf("expected default database path, got %s", cfg.Database.Path)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("MINIFIGDB_ADDR", ":9090")
	t.Setenv("MINIFIGDB_DB", "/tmp/override.db")

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected env override :9090, got %s", cfg.ListenAddr)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Fatalf("expected env override database path, got %s", cfg.Database.Path)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		ListenAddr: ":4000",
		Database:   DatabaseConfig{Path: "figs.db"},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.ListenAddr != ":4000" || loaded.Database.Path != "figs.db" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestFindConfigPathPrefersEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv(EnvConfigPath, path)
	if got := FindConfigPath(); got != path {
		t.Fatalf("expected %s, got %s", path, got)
	}

	// A pointed-at file that does not exist is skipped.
	t.Setenv(EnvConfigPath, filepath.Join(dir, "missing.yaml"))
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	if got := FindConfigPath(); got == filepath.Join(dir, "missing.yaml") {
		t.Fatalf("must not return a nonexistent path")
	}
}
