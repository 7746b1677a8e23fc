package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/teller"
	"github.com/etnz/teller/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start an interactive teller session" }
func (*runCmd) Usage() string {
	return `tlr run

  Loads the accounts file, runs the interactive menu (create account,
  sign in, deposit, withdraw, view history) and saves all accounts back
  to the file when the session ends.
`
}

func (p *runCmd) SetFlags(f *flag.FlagSet) {}

func (p *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		return fail(err)
	}
	log := newLogger(cfg).With().Str("session", uuid.NewString()).Logger()

	store, err := loadStore(cfg, log)
	if err != nil {
		return fail(err)
	}

	s := session{
		store: store,
		p:     newPrompter(os.Stdin, os.Stdout),
		log:   log,
		cfg:   cfg,
	}
	s.start()

	if err := saveStore(cfg, store); err != nil {
		log.Error().Err(err).Msg("could not save accounts")
		return fail(err)
	}
	log.Info().Int("accounts", store.Len()).Msg("accounts saved")
	return subcommands.ExitSuccess
}

// session drives one interactive run. It owns all prompt text and display
// formatting; the store and accounts never print anything themselves.
type session struct {
	store *teller.AccountStore
	p     *prompter
	log   zerolog.Logger
	cfg   Config
}

// start runs the start menu until the user exits or input ends.
func (s *session) start() {
	for {
		s.p.say("\n=== BANK START ===\n")
		s.p.say("1. Create Account\n2. Sign In\n3. Exit\n")
		choice, ok := s.p.Int("Select an option")
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !s.createAccountFlow() {
				return
			}
		case 2:
			if !s.signInFlow() {
				return
			}
		case 3:
			s.p.say("Goodbye.\n")
			return
		default:
			s.p.say("Invalid option.\n")
		}
	}
}

// createAccountFlow collects a username, password and profile, creates the
// account and drops the user into the account menu. It returns false only
// when the input source is exhausted.
func (s *session) createAccountFlow() bool {
	s.p.say("\n=== CREATE ACCOUNT ===\n")

	var username string
	for {
		u, ok := s.p.Line("Create a username")
		if !ok {
			return false
		}
		if s.store.FindByUsername(u) != nil {
			s.p.say("That username is already taken.\n")
			continue
		}
		username = u
		break
	}

	password, ok := s.p.Line("Create a password")
	if !ok {
		return false
	}

	firstName, ok := s.p.Line("Enter your first name")
	if !ok {
		return false
	}
	lastName, ok := s.p.Line("Enter your last name")
	if !ok {
		return false
	}

	var birthDate teller.Date
	for {
		month, ok := s.p.Int("Date of Birth\nMonth")
		if !ok {
			return false
		}
		day, ok := s.p.Int("Day")
		if !ok {
			return false
		}
		year, ok := s.p.Int("Year")
		if !ok {
			return false
		}
		d, err := teller.NewDate(year, time.Month(month), day)
		if err != nil {
			s.p.say("Not a valid calendar date.\n")
			continue
		}
		birthDate = d
		break
	}

	accountType := teller.Savings
	choice, ok := s.p.Int("1. Checking account\n2. Savings account")
	if !ok {
		return false
	}
	if choice == 1 {
		accountType = teller.Checking
	}

	acc, err := s.store.CreateAccount(username, password, teller.Profile{
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
		Type:      accountType,
	})
	if err != nil {
		// Username collisions are caught above; anything surfacing here is
		// an environment failure (e.g. no entropy) and ends the session.
		s.log.Error().Err(err).Msg("could not create account")
		return false
	}

	s.p.say("\nAccount created!\nAccount Number: %d\n", acc.AccountNumber())
	return s.accountMenu(acc)
}

// signInFlow authenticates a returning user. A failed sign-in goes back to
// the start menu without revealing whether the username exists.
func (s *session) signInFlow() bool {
	s.p.say("\n=== SIGN IN ===\n")
	username, ok := s.p.Line("Username")
	if !ok {
		return false
	}
	password, ok := s.p.Line("Password")
	if !ok {
		return false
	}
	acc, ok := s.store.Authenticate(username, password)
	if !ok {
		s.p.say("Invalid username or password.\n")
		return true
	}
	s.p.say("Signed in.\n")
	return s.accountMenu(acc)
}

// accountMenu runs the signed-in menu until the user signs out.
func (s *session) accountMenu(acc *teller.Account) bool {
	for {
		s.p.say("\n=== ACCOUNT MENU ===\n")
		s.p.say("User: %s\n", acc.Username())
		s.p.say("Account #: %d\n", acc.AccountNumber())
		s.p.say("Type: %s\n", acc.Type())
		s.p.say("Name: %s\n", acc.FullName())
		s.p.say("DOB: %s\n", acc.BirthDate())

		s.p.say("\n1. Deposit\n2. Withdraw\n3. View Balance + History\n4. Export Statement\n5. Sign Out (Back to Start)\n")
		choice, ok := s.p.Int("Select an option")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			amount, ok := s.p.Amount("Enter amount to deposit", s.cfg.Currency)
			if !ok {
				return false
			}
			if err := acc.Deposit(amount); err != nil {
				s.p.say("Cannot deposit: %v.\n", err)
			}
		case 2:
			amount, ok := s.p.Amount("Enter amount to withdraw", s.cfg.Currency)
			if !ok {
				return false
			}
			if err := acc.Withdraw(amount); err != nil {
				s.p.say("Cannot withdraw: %v.\n", err)
			}
		case 3:
			s.p.say("%s", acc.HistoryReport())
		case 4:
			s.exportStatement(acc)
		case 5:
			return true
		default:
			s.p.say("Invalid option.\n")
		}
	}
}

// exportStatement writes a markdown statement of the account next to the
// accounts file.
func (s *session) exportStatement(acc *teller.Account) {
	name := fmt.Sprintf("statement-%s.md", acc.Username())
	if err := os.WriteFile(name, []byte(renderer.Statement(acc)), 0644); err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("could not export statement")
		return
	}
	s.p.say("Statement written to %s\n", name)
}
