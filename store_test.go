package teller

import (
	"errors"
	"testing"
)

func TestCreateAccount_AssignsSequentialNumbers(t *testing.T) {
	s := NewAccountStore("USD")
	a, err := s.CreateAccount("alice", "pw1", testProfile())
	if err != nil {
		t.Fatalf("CreateAccount(alice) error: %v", err)
	}
	b, err := s.CreateAccount("bob", "pw2", testProfile())
	if err != nil {
		t.Fatalf("CreateAccount(bob) error: %v", err)
	}
	if a.AccountNumber() != accountNumberBase+1 {
		t.Errorf("first account number = %d, want %d", a.AccountNumber(), accountNumberBase+1)
	}
	if b.AccountNumber() != accountNumberBase+2 {
		t.Errorf("second account number = %d, want %d", b.AccountNumber(), accountNumberBase+2)
	}
}

func TestCreateAccount_BlankUsername(t *testing.T) {
	s := NewAccountStore("USD")
	for _, username := range []string{"", "   ", "\t"} {
		if _, err := s.CreateAccount(username, "pw", testProfile()); !errors.Is(err, ErrBlankUsername) {
			t.Errorf("CreateAccount(%q) error = %v, want ErrBlankUsername", username, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("store size = %d after refused creations, want 0", s.Len())
	}
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	s := NewAccountStore("USD")
	if _, err := s.CreateAccount("alice", "pw1", testProfile()); err != nil {
		t.Fatalf("CreateAccount(alice) error: %v", err)
	}
	if _, err := s.CreateAccount("alice", "other", testProfile()); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate CreateAccount error = %v, want ErrUsernameTaken", err)
	}
	if s.Len() != 1 {
		t.Errorf("store size = %d after refused duplicate, want 1", s.Len())
	}

	// usernames are case-sensitive: a different casing is a different user.
	if _, err := s.CreateAccount("Alice", "pw2", testProfile()); err != nil {
		t.Errorf("CreateAccount(Alice) error = %v, want nil", err)
	}
	if s.Len() != 2 {
		t.Errorf("store size = %d, want 2", s.Len())
	}
}

func TestFindByUsername(t *testing.T) {
	s := NewAccountStore("USD")
	if _, err := s.CreateAccount("alice", "pw1", testProfile()); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if a := s.FindByUsername("alice"); a == nil || a.Username() != "alice" {
		t.Errorf("FindByUsername(alice) = %v", a)
	}
	if a := s.FindByUsername("ALICE"); a != nil {
		t.Error("FindByUsername is not case-sensitive")
	}
	if a := s.FindByUsername("nobody"); a != nil {
		t.Error("FindByUsername returned an account for an unknown username")
	}
}

// TestAuthenticate checks that the two failure modes, unknown username and
// wrong password, produce the exact same observable result.
func TestAuthenticate(t *testing.T) {
	s := NewAccountStore("USD")
	if _, err := s.CreateAccount("alice", "secret1", testProfile()); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	if a, ok := s.Authenticate("alice", "secret1"); !ok || a == nil || a.Username() != "alice" {
		t.Errorf("Authenticate with correct credentials = %v, %v", a, ok)
	}

	aUnknown, okUnknown := s.Authenticate("nobody", "secret1")
	aWrong, okWrong := s.Authenticate("alice", "wrong")
	if okUnknown || aUnknown != nil {
		t.Errorf("Authenticate(unknown user) = %v, %v, want nil, false", aUnknown, okUnknown)
	}
	if okWrong || aWrong != nil {
		t.Errorf("Authenticate(wrong password) = %v, %v, want nil, false", aWrong, okWrong)
	}
	if aUnknown != aWrong || okUnknown != okWrong {
		t.Error("unknown-user and wrong-password results are distinguishable")
	}
}
