package teller

import "errors"

// Domain errors returned by account and store operations. They describe
// validation failures only: the operation is refused, the process keeps
// running, and the caller decides what to show the user.
var (
	// ErrBlankUsername is returned when creating an account with a blank username.
	ErrBlankUsername = errors.New("username cannot be blank")

	// ErrUsernameTaken is returned when the username already exists in the store.
	// The match is exact and case-sensitive.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrNonPositiveAmount is returned by deposits and withdrawals of an
	// amount that is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned by a withdrawal that exceeds the
	// current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
