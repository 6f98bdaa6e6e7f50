package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveUsesEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELF_PATH", dir)

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.ShelfDir != dir {
		t.Errorf("ShelfDir = %q, want %q", cfg.ShelfDir, dir)
	}
	if !cfg.EnvVarSet {
		t.Error("EnvVarSet must be true when SHELF_PATH is used")
	}
	if cfg.SettingsPath != filepath.Join(dir, "settings.yaml") {
		t.Errorf("SettingsPath = %q", cfg.SettingsPath)
	}
	if cfg.ProfilePath != filepath.Join(dir, "profile.xml") {
		t.Errorf("ProfilePath = %q", cfg.ProfilePath)
	}
	if cfg.MetadataDBPath != filepath.Join(dir, "metadata.db") {
		t.Errorf("MetadataDBPath = %q", cfg.MetadataDBPath)
	}
}

func TestResolveFallsBackToHome(t *testing.T) {
	t.Setenv("SHELF_PATH", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.EnvVarSet {
		t.Error("EnvVarSet must be false without SHELF_PATH")
	}
	if filepath.Base(cfg.ShelfDir) != ".shelf" {
		t.Errorf("ShelfDir = %q, want a .shelf directory", cfg.ShelfDir)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELF_PATH", dir)

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	exists, err := cfg.Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("expected false before the profile is written")
	}

	if err := os.WriteFile(cfg.ProfilePath, []byte("<profile/>"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	exists, err = cfg.Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected true once directory and profile exist")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.ListSource != "xml-preferred" {
		t.Errorf("ListSource = %q", s.ListSource)
	}
	if s.BackupCount != 3 || s.WorkerMinimum != 3 {
		t.Errorf("BackupCount, WorkerMinimum = %d, %d, want 3, 3", s.BackupCount, s.WorkerMinimum)
	}
	if s.LogLevel != "info" || !s.LogPretty {
		t.Errorf("logging defaults = %q, %v", s.LogLevel, s.LogPretty)
	}
}

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ListSource != "xml-preferred" || s.BackupCount != 3 {
		t.Errorf("missing file must yield defaults, got %+v", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := DefaultSettings()
	s.ListSource = "website"
	s.BackupCount = 5
	s.SteamPath = "/opt/steam"
	s.WorkerMinimum = 8

	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *s {
		t.Errorf("loaded = %+v, want %+v", loaded, s)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("backup_count: 7\n"), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.BackupCount != 7 {
		t.Errorf("BackupCount = %d, want 7", s.BackupCount)
	}
	if s.ListSource != "xml-preferred" || s.WorkerMinimum != 3 {
		t.Errorf("unset keys must keep defaults, got %+v", s)
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("backup_count: [not an int\n"), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected error for malformed settings file")
	}
}
