package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/teller"
)

func newTestStore(t *testing.T) (*teller.AccountStore, *teller.Account) {
	t.Helper()
	s := teller.NewAccountStore("USD")
	birthDate, err := teller.NewDate(1990, time.March, 14)
	if err != nil {
		t.Fatal(err)
	}
	a, err := s.CreateAccount("alice", "secret1", teller.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		BirthDate: birthDate,
		Type:      teller.Checking,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s, a
}

func TestStatement(t *testing.T) {
	_, a := newTestStore(t)
	if err := a.Deposit(teller.M(100, "USD")); err != nil {
		t.Fatal(err)
	}

	got := Statement(a)
	for _, want := range []string{
		"# Statement for alice",
		"## Transaction History",
		"Deposited",
		"Account created",
		"Holder: Ada Lovelace",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("statement missing %q:\n%s", want, got)
		}
	}
	// credentials never leak into a statement.
	if strings.Contains(got, "secret1") {
		t.Error("statement contains the password")
	}
}

func TestAccounts(t *testing.T) {
	s, _ := newTestStore(t)
	got := Accounts(s)
	for _, want := range []string{"# Accounts", "alice", "Checking", "Ada Lovelace", "3/14/1990"} {
		if !strings.Contains(got, want) {
			t.Errorf("accounts table missing %q:\n%s", want, got)
		}
	}
}
