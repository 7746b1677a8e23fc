package teller

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// LoadAccounts reads the accounts file at path and rebuilds the store.
// A missing file means zero accounts, not an error: the vault simply starts
// empty on first run. Any other failure to open or read the file propagates.
func LoadAccounts(path string, log zerolog.Logger, currency string) (*AccountStore, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("file", path).Msg("no accounts file found, starting empty")
		return NewAccountStore(currency), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeAccounts(f, log, currency)
	if err != nil {
		return nil, fmt.Errorf("decoding accounts file %q: %w", path, err)
	}
	log.Info().Str("file", path).Int("accounts", s.Len()).Msg("accounts loaded")
	return s, nil
}

// SaveAccounts writes the whole store to the accounts file at path,
// truncating any previous content. A failure here is an environment failure
// the caller should surface; there is no retry policy.
func SaveAccounts(path string, s *AccountStore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening accounts file %q for writing: %w", path, err)
	}
	if err := EncodeAccounts(f, s); err != nil {
		f.Close()
		return fmt.Errorf("saving accounts file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing accounts file %q: %w", path, err)
	}
	return nil
}
