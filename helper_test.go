package teller

import (
	"strings"
	"time"
)

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// testProfile is a valid profile shared by tests that do not care about the
// profile content.
func testProfile() Profile {
	d, err := NewDate(1990, time.March, 14)
	if err != nil {
		panic(err)
	}
	return Profile{FirstName: "Ada", LastName: "Lovelace", BirthDate: d, Type: Checking}
}

// testAccount builds a bare account with a zero balance and no history,
// bypassing the expensive key derivation for tests that only exercise
// balance and log behavior.
func testAccount() *Account {
	return &Account{username: "ada", profile: testProfile(), number: accountNumberBase + 1, balance: USD(0)}
}

// countEntries returns how many history entries contain the given marker.
func countEntries(a *Account, marker string) int {
	n := 0
	for _, e := range a.history {
		if strings.Contains(e, marker) {
			n++
		}
	}
	return n
}
