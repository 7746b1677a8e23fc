package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display a summary table of all stored accounts" }
func (*listCmd) Usage() string {
	return `tlr list:
  prints a markdown table of the stored accounts. Only non-sensitive
  fields are shown: balances, salts and password hashes never appear.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		return fail(err)
	}
	store, err := loadStore(cfg, newLogger(cfg))
	if err != nil {
		return fail(err)
	}
	fmt.Print(renderer.Accounts(store))
	return subcommands.ExitSuccess
}
