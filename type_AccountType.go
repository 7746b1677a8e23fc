package teller

import "fmt"

// AccountType is the closed set of account kinds the vault manages.
type AccountType int

const (
	// Checking is a day-to-day spending account.
	Checking AccountType = iota
	// Savings is a deposit account.
	Savings
)

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "Checking"
	case Savings:
		return "Savings"
	default:
		return "unknown"
	}
}

// ParseAccountType parses the wire form of an account type.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Checking":
		return Checking, nil
	case "Savings":
		return Savings, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}
