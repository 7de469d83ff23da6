// Package config loads photokeys settings.
//
// Settings come from an optional TOML file, overlaid with PHOTOKEYS_*
// environment variables. A missing settings file is not an error; defaults
// apply.
package config

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all photokeys settings.
type Config struct {
	// AlbumsPath is the album export JSON file read at startup.
	AlbumsPath string `toml:"albums"`

	// RulesPath is the optional Lua rules script pinning explicit
	// keybindings for named albums.
	RulesPath string `toml:"rules"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"logLevel"`

	// UI holds display settings.
	UI UIConfig `toml:"ui"`
}

// UIConfig holds display settings for the terminal client.
type UIConfig struct {
	// ShowHints renders the next-available-characters row while typing a
	// keybinding.
	ShowHints bool `toml:"showHints"`

	// HeatColors tints album rows by asset count.
	HeatColors bool `toml:"heatColors"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		UI: UIConfig{
			ShowHints:  true,
			HeatColors: true,
		},
	}
}

// Load reads the settings file at path, overlaying defaults. A missing file
// yields the defaults. Environment overrides apply in both cases.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No settings file: defaults plus environment.
	case err != nil:
		return cfg, fmt.Errorf("reading settings %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadReader parses settings from r, overlaying defaults. No environment
// overrides are applied; intended for tests.
func LoadReader(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// envVars maps environment variable names to their override targets.
var envVars = map[string]func(*Config, string){
	"PHOTOKEYS_ALBUMS":    func(c *Config, v string) { c.AlbumsPath = v },
	"PHOTOKEYS_RULES":     func(c *Config, v string) { c.RulesPath = v },
	"PHOTOKEYS_LOG_LEVEL": func(c *Config, v string) { c.LogLevel = v },
}

// applyEnv overlays environment variables onto the configuration. getenv is
// injected for testability.
func (c *Config) applyEnv(getenv func(string) string) {
	for name, set := range envVars {
		if v := getenv(name); v != "" {
			set(c, v)
		}
	}
}

// Validate checks settings that have a closed value set.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logLevel %q: must be debug, info, warn, or error", c.LogLevel)
	}
}
