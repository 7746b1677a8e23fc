package teller

import (
	"encoding/base64"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// accountNumberBase seeds the account number counter. The counter is
// incremented before each assignment, so the first account of a run gets
// accountNumberBase+1.
const accountNumberBase = 100000

// AccountStore is the in-memory set of accounts, in insertion (or load)
// order. It owns the account number counter: numbers are monotonically
// increasing within a run and never reused, but they are not persisted, so
// restarts renumber from the base.
//
// The store assumes exclusive single-threaded ownership; there is no
// locking discipline because there is no concurrent access.
type AccountStore struct {
	accounts          []*Account
	lastAccountNumber int
	currency          string
}

// NewAccountStore creates an empty store whose accounts are denominated in
// the given display currency (ISO 4217 code, defaulting to USD).
func NewAccountStore(currency string) *AccountStore {
	if currency == "" {
		currency = "USD"
	}
	return &AccountStore{lastAccountNumber: accountNumberBase, currency: currency}
}

// nextAccountNumber increments the counter and returns the new value. The
// value is consumed even if the account is later never persisted.
func (s *AccountStore) nextAccountNumber() int {
	s.lastAccountNumber++
	return s.lastAccountNumber
}

// Currency returns the display currency accounts in this store use.
func (s *AccountStore) Currency() string { return s.currency }

// Len returns the number of accounts in the store.
func (s *AccountStore) Len() int { return len(s.accounts) }

// All iterates over the accounts in store order.
func (s *AccountStore) All() iter.Seq[*Account] { return slices.Values(s.accounts) }

// CreateAccount opens a new account with a zero balance. It refuses a blank
// username and a username already present in the store (case-sensitive exact
// match). Salt generation failing is an environment failure and propagates.
func (s *AccountStore) CreateAccount(username, password string, profile Profile) (*Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrBlankUsername
	}
	if s.FindByUsername(username) != nil {
		return nil, ErrUsernameTaken
	}
	salt, err := NewSalt()
	if err != nil {
		return nil, fmt.Errorf("creating account %q: %w", username, err)
	}
	hash := DeriveKey([]byte(password), salt)
	a := &Account{
		username: username,
		saltB64:  base64.StdEncoding.EncodeToString(salt),
		hashB64:  base64.StdEncoding.EncodeToString(hash),
		profile:  profile,
		number:   s.nextAccountNumber(),
		balance:  M(0, s.currency),
	}
	a.logf("Account created")
	s.accounts = append(s.accounts, a)
	return a, nil
}

// restore rebuilds an account from its persisted fields. The account number
// is re-derived from the counter and the transaction log starts over with a
// single loaded marker: both are deliberately not persisted.
func (s *AccountStore) restore(username, saltB64, hashB64 string, profile Profile, balance Money) *Account {
	a := &Account{
		username: username,
		saltB64:  saltB64,
		hashB64:  hashB64,
		profile:  profile,
		number:   s.nextAccountNumber(),
		balance:  balance,
	}
	a.logf("Account loaded")
	s.accounts = append(s.accounts, a)
	return a
}

// FindByUsername returns the account with that exact username, or nil.
// The scan is linear; usernames are unique by construction so the first
// match is the only one.
func (s *AccountStore) FindByUsername(username string) *Account {
	for _, a := range s.accounts {
		if a.username == username {
			return a
		}
	}
	return nil
}

// Authenticate looks up the account and checks the password against it.
// An unknown username and a wrong password are deliberately
// indistinguishable to the caller, so the result leaks nothing about which
// usernames exist.
func (s *AccountStore) Authenticate(username, password string) (*Account, bool) {
	a := s.FindByUsername(username)
	if a == nil || !a.CheckPassword(password) {
		return nil, false
	}
	return a, true
}
