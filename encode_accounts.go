package teller

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// The accounts file is line-oriented UTF-8 text, one account per line, with
// exactly recordFields pipe-delimited fields in a fixed order:
//
//	username|saltB64|hashB64|firstName|lastName|dob|type|balance
//
// The balance is written in locale-independent decimal text (never
// currency-formatted) so it round-trips exactly. Account numbers and
// transaction histories are deliberately not persisted: numbers are
// re-derived sequentially on load and the history collapses to a single
// "Account loaded" marker. Callers must not rely on either surviving a
// restart.
const recordFields = 8

// EncodeAccounts writes every account of the store, in store order, to w in
// the pipe-delimited wire format.
func EncodeAccounts(w io.Writer, s *AccountStore) error {
	for a := range s.All() {
		fields := []string{
			a.username,
			a.saltB64,
			a.hashB64,
			a.profile.FirstName,
			a.profile.LastName,
			a.profile.BirthDate.String(),
			a.profile.Type.String(),
			a.balance.DecimalString(),
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "|")); err != nil {
			return fmt.Errorf("writing account %q: %w", a.username, err)
		}
	}
	return nil
}

// DecodeAccounts reads the pipe-delimited wire format from r and rebuilds an
// AccountStore denominated in the given currency.
//
// A malformed line never aborts the load: it is skipped with a logged
// diagnostic and decoding continues with the remaining lines. Malformed
// means a wrong field count, an unparseable balance, and, since profile
// fields are validated at construction, an unparseable birth date, an
// unknown account type, or salt/hash text that is not base64.
func DecodeAccounts(r io.Reader, log zerolog.Logger, currency string) (*AccountStore, error) {
	s := NewAccountStore(currency)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != recordFields {
			log.Warn().Int("line", n).Int("fields", len(parts)).Msg("skipping account record: wrong field count")
			continue
		}
		balance, err := ParseMoney(strings.TrimSpace(parts[7]), currency)
		if err != nil {
			log.Warn().Int("line", n).Str("balance", parts[7]).Msg("skipping account record: unparseable balance")
			continue
		}
		birthDate, err := ParseDate(parts[5])
		if err != nil {
			log.Warn().Int("line", n).Str("dob", parts[5]).Msg("skipping account record: unparseable birth date")
			continue
		}
		accountType, err := ParseAccountType(parts[6])
		if err != nil {
			log.Warn().Int("line", n).Str("type", parts[6]).Msg("skipping account record: unknown account type")
			continue
		}
		if !isBase64(parts[1]) || !isBase64(parts[2]) {
			log.Warn().Int("line", n).Str("username", parts[0]).Msg("skipping account record: corrupt credentials")
			continue
		}
		profile := Profile{
			FirstName: parts[3],
			LastName:  parts[4],
			BirthDate: birthDate,
			Type:      accountType,
		}
		s.restore(parts[0], parts[1], parts[2], profile, balance)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return s, nil
}

func isBase64(s string) bool {
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}
