package teller

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. They are deliberately fixed: the persisted
// file format carries no algorithm identifier, so changing any of them
// invalidates every stored hash.
const (
	saltBytes     = 16
	keyBytes      = 32
	kdfIterations = 120_000
)

// NewSalt returns saltBytes of cryptographically random data.
// A failure here means the platform entropy source is broken; callers should
// treat it as fatal rather than retry.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("reading random salt: %w", err)
	}
	return salt, nil
}

// DeriveKey stretches a password into a keyBytes key using
// PBKDF2-HMAC-SHA-256. It is deterministic for a given (password, salt)
// pair and intentionally slow.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, kdfIterations, keyBytes, sha256.New)
}

// VerifyPassword re-derives a key from the candidate password and the stored
// salt, and compares it to the stored hash in constant time, so that the
// comparison leaks nothing about where the two keys first differ.
//
// Salt and hash are the base64 text forms persisted in the accounts file.
// Text that does not decode denotes a corrupt record and verifies as false.
func VerifyPassword(candidate []byte, saltB64, hashB64 string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}
	derived := DeriveKey(candidate, salt)
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
