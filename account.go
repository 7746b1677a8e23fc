package teller

import (
	"fmt"
	"time"
)

// timestampFormat prefixes every transaction log entry.
const timestampFormat = "01/02/2006 15:04:05"

// Profile holds the immutable identity fields captured when an account is
// opened. BirthDate and Type are validated at construction; the store never
// holds free-text variants of either.
type Profile struct {
	FirstName string
	LastName  string
	BirthDate Date
	Type      AccountType
}

// Account owns one user's credentials, profile, balance and transaction log.
//
// The salt and password hash are set once at construction and never mutated.
// The balance is mutated only by Deposit and Withdraw and never goes
// negative. The transaction log is append-only: failed operations are
// recorded too, and entries are never reordered or removed.
type Account struct {
	username string
	saltB64  string
	hashB64  string
	profile  Profile
	number   int
	balance  Money
	history  []string
}

// Deposit increases the balance by amount. A non-positive amount is refused
// with ErrNonPositiveAmount; the refusal is still recorded as a failed entry
// in the transaction log, and the balance is left untouched.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		a.logf("FAILED Deposit %s", amount)
		return ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	a.logf("Deposited %s", amount)
	return nil
}

// Withdraw decreases the balance by amount. A non-positive amount is refused
// with ErrNonPositiveAmount, an amount exceeding the balance with
// ErrInsufficientFunds. Each refusal is recorded as its own failed entry and
// leaves the balance untouched.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		a.logf("FAILED Withdrawal %s", amount)
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(a.balance) {
		a.logf("FAILED Withdrawal %s", amount)
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.logf("Withdrew %s", amount)
	return nil
}

// CheckPassword reports whether the candidate password matches this
// account's stored credentials. It never reveals why a mismatch happened.
func (a *Account) CheckPassword(candidate string) bool {
	return VerifyPassword([]byte(candidate), a.saltB64, a.hashB64)
}

// logf appends a timestamped entry to the transaction log.
func (a *Account) logf(format string, args ...any) {
	entry := time.Now().Format(timestampFormat) + " | " + fmt.Sprintf(format, args...)
	a.history = append(a.history, entry)
}

// Read-only accessors for display fields.

func (a *Account) Username() string  { return a.username }
func (a *Account) FirstName() string { return a.profile.FirstName }
func (a *Account) LastName() string  { return a.profile.LastName }
func (a *Account) FullName() string  { return a.profile.FirstName + " " + a.profile.LastName }
func (a *Account) BirthDate() Date   { return a.profile.BirthDate }
func (a *Account) Type() AccountType { return a.profile.Type }
func (a *Account) Balance() Money    { return a.balance }

// AccountNumber returns this account's session-local number. Numbers are
// unique within a process run only: they are not persisted and are
// re-assigned sequentially on load.
func (a *Account) AccountNumber() int { return a.number }
