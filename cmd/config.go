package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config holds the few knobs the application exposes. Everything has a
// sensible default so the tool runs without any configuration file at all.
type Config struct {
	// AccountsFile is the path of the persisted accounts file.
	AccountsFile string `toml:"accounts_file"`
	// Currency is the ISO 4217 code used to display amounts.
	Currency string `toml:"currency"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		AccountsFile: "accounts.txt",
		Currency:     "USD",
		LogLevel:     "info",
	}
}

// LoadConfig reads a TOML configuration file over the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading configuration %q: %w", path, err)
	}
	return cfg, nil
}
