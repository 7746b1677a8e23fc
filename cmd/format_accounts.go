package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type formatAccountsCmd struct{}

func (*formatAccountsCmd) Name() string     { return "format-accounts" }
func (*formatAccountsCmd) Synopsis() string { return "rewrites the accounts file into a canonical form" }
func (*formatAccountsCmd) Usage() string {
	return `tlr format-accounts:
  decodes the accounts file, reporting every malformed record it skips,
  and writes the surviving records back in canonical form.
`
}

func (p *formatAccountsCmd) SetFlags(f *flag.FlagSet) {}

func (p *formatAccountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		return fail(err)
	}
	log := newLogger(cfg)

	// 1. Read the accounts file, dropping malformed records with a diagnostic.
	store, err := loadStore(cfg, log)
	if err != nil {
		return fail(err)
	}

	// 2. Write the surviving accounts back to the same file.
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}

	fmt.Printf("Accounts file %q has been formatted (%d accounts).\n", cfg.AccountsFile, store.Len())
	return subcommands.ExitSuccess
}
