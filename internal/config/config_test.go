package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.AccentColor != DefaultAccentColor {
		t.Fatalf("accent=%q, want default", cfg.AccentColor)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("log level=%q, want default", cfg.LogLevel)
	}
	if cfg.DBPath != "" {
		t.Fatalf("db path should be unset by default")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petal.toml")
	content := "db_path = \"/tmp/p.db\"\naccent_color = \"#a1e3c2\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/p.db" {
		t.Fatalf("db path=%q", cfg.DBPath)
	}
	if cfg.AccentColor != "#a1e3c2" {
		t.Fatalf("accent=%q", cfg.AccentColor)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petal.toml")
	if err := os.WriteFile(path, []byte("db_path = [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petal.toml")
	if err := os.WriteFile(path, []byte("log_level = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
	if cfg.AccentColor != DefaultAccentColor {
		t.Fatalf("accent should keep its default, got %q", cfg.AccentColor)
	}
}
