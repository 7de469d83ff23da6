package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.UI.ShowHints {
		t.Errorf("UI.ShowHints = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadReader(t *testing.T) {
	src := `
albums = "/data/albums.json"
rules = "/data/rules.lua"
logLevel = "debug"

[ui]
showHints = false
heatColors = true
`
	cfg, err := LoadReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	if cfg.AlbumsPath != "/data/albums.json" {
		t.Errorf("AlbumsPath = %q, want /data/albums.json", cfg.AlbumsPath)
	}
	if cfg.RulesPath != "/data/rules.lua" {
		t.Errorf("RulesPath = %q, want /data/rules.lua", cfg.RulesPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.UI.ShowHints {
		t.Errorf("UI.ShowHints = true, want false")
	}
}

func TestLoadReaderPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(`albums = "x.json"`))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
	if !cfg.UI.ShowHints {
		t.Errorf("UI.ShowHints = false, want default true")
	}
}

func TestLoadReaderRejectsBadLevel(t *testing.T) {
	if _, err := LoadReader(strings.NewReader(`logLevel = "loud"`)); err == nil {
		t.Errorf("LoadReader() accepted invalid log level")
	}
}

func TestLoadReaderRejectsBadTOML(t *testing.T) {
	if _, err := LoadReader(strings.NewReader(`albums = [unterminated`)); err == nil {
		t.Errorf("LoadReader() accepted malformed TOML")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(`logLevel = "warn"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"PHOTOKEYS_ALBUMS":    "/env/albums.json",
		"PHOTOKEYS_LOG_LEVEL": "error",
	}

	cfg.applyEnv(func(k string) string { return env[k] })

	if cfg.AlbumsPath != "/env/albums.json" {
		t.Errorf("AlbumsPath = %q, want /env/albums.json", cfg.AlbumsPath)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if cfg.RulesPath != "" {
		t.Errorf("RulesPath = %q, want empty (unset env)", cfg.RulesPath)
	}
}
