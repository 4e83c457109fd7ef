// Package config loads the TOML configuration file and turns its
// keymap tables into compiled keymaps, overlaying the built-in
// defaults. A malformed binding is reported and skipped; it never
// takes the rest of the file down with it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/carrier-pigeon/pigeon/internal/input/keymap"
)

// Config is the on-disk configuration.
type Config struct {
	Input InputConfig `toml:"input"`
	Log   LogConfig   `toml:"log"`

	// Keymaps maps a mode name to a table of key notation to action
	// name, e.g. [keymaps.list] "gg" = "select-first".
	Keymaps map[string]map[string]string `toml:"keymaps"`
}

// InputConfig configures the key-sequence resolver.
type InputConfig struct {
	// TimeoutMS is how long an ambiguous key prefix waits for the next
	// key before being passed through, in milliseconds.
	TimeoutMS int `toml:"timeout_ms"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{TimeoutMS: int(keymap.DefaultTimeout / time.Millisecond)},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads the config file at path. A missing file is not an error;
// it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the resolver timeout as a duration, falling back to
// the default for zero or negative values.
func (c Config) Timeout() time.Duration {
	if c.Input.TimeoutMS <= 0 {
		return keymap.DefaultTimeout
	}
	return time.Duration(c.Input.TimeoutMS) * time.Millisecond
}
