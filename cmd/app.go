// Package cmd implements the CLI application to manage the account vault.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/teller"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "session")

	c.Register(&formatAccountsCmd{}, "maintenance")
	c.Register(&listCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "teller.toml", "Path to the optional configuration file (TOML)")
var accountsFile = flag.String("accounts-file", "", "Path to the accounts file; overrides the configuration file")

// appConfig resolves the effective configuration: file values over defaults,
// command-line flags over both.
func appConfig() (Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *accountsFile != "" {
		cfg.AccountsFile = *accountsFile
	}
	return cfg, nil
}

// newLogger builds the application logger writing human-readable lines to
// stderr, so diagnostics never interleave with the interactive prompts on
// stdout.
func newLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadStore is the central function to open the accounts file.
func loadStore(cfg Config, log zerolog.Logger) (*teller.AccountStore, error) {
	return teller.LoadAccounts(cfg.AccountsFile, log, cfg.Currency)
}

// saveStore persists the accounts file back to disk.
func saveStore(cfg Config, s *teller.AccountStore) error {
	return teller.SaveAccounts(cfg.AccountsFile, s)
}

// fail prints the error for the user and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
