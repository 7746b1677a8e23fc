package teller

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error: %v", err)
	}
	if len(a) != saltBytes {
		t.Errorf("len(salt) = %d, want %d", len(a), saltBytes)
	}
	b, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two salts are identical, random source looks broken")
	}
}

func TestDeriveKey(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1 := DeriveKey([]byte("secret1"), salt)
	k2 := DeriveKey([]byte("secret1"), salt)

	if len(k1) != keyBytes {
		t.Errorf("len(key) = %d, want %d", len(k1), keyBytes)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("DeriveKey is not deterministic for the same password and salt")
	}

	k3 := DeriveKey([]byte("secret2"), salt)
	if bytes.Equal(k1, k3) {
		t.Error("different passwords derived the same key")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error: %v", err)
	}
	saltB64 := base64.StdEncoding.EncodeToString(salt)
	hashB64 := base64.StdEncoding.EncodeToString(DeriveKey([]byte("secret1"), salt))

	if !VerifyPassword([]byte("secret1"), saltB64, hashB64) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword([]byte("secret2"), saltB64, hashB64) {
		t.Error("wrong password verified")
	}
	if VerifyPassword([]byte(""), saltB64, hashB64) {
		t.Error("empty password verified")
	}
}

func TestVerifyPassword_CorruptEncoding(t *testing.T) {
	salt, _ := NewSalt()
	saltB64 := base64.StdEncoding.EncodeToString(salt)
	hashB64 := base64.StdEncoding.EncodeToString(DeriveKey([]byte("secret1"), salt))

	if VerifyPassword([]byte("secret1"), "*** not base64 ***", hashB64) {
		t.Error("corrupt salt text verified")
	}
	if VerifyPassword([]byte("secret1"), saltB64, "*** not base64 ***") {
		t.Error("corrupt hash text verified")
	}
}
