// Package renderer turns core reports into markdown for display. It is a
// pure consumer of the teller package: nothing here mutates an account.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/teller"
	md "github.com/nao1215/markdown"
)

// Statement renders a full markdown statement for one account: identity,
// balance, and the complete transaction log.
func Statement(a *teller.Account) string {
	r := a.HistoryReport()

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement for %s", a.Username()))
	doc.BulletList(
		fmt.Sprintf("Account number: %d", a.AccountNumber()),
		fmt.Sprintf("Type: %s", a.Type()),
		fmt.Sprintf("Holder: %s", a.FullName()),
		fmt.Sprintf("Balance: %s", r.Balance),
	)

	doc.H2("Transaction History")
	if len(r.Entries) == 0 {
		doc.PlainText("No history")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Timestamp", "Description"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Entries {
		timestamp, description, found := strings.Cut(entry, " | ")
		if !found {
			description = entry
			timestamp = ""
		}
		table.Rows = append(table.Rows, []string{timestamp, description})
	}
	doc.Table(table)

	return doc.String()
}

// Accounts renders a summary table of every account in the store, in store
// order. Balances and credentials are deliberately left out.
func Accounts(s *teller.AccountStore) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Username", "Number", "Type", "Holder", "Date of Birth"},
		Rows:   [][]string{},
	}
	for a := range s.All() {
		table.Rows = append(table.Rows, []string{
			a.Username(),
			fmt.Sprintf("%d", a.AccountNumber()),
			a.Type().String(),
			a.FullName(),
			a.BirthDate().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
