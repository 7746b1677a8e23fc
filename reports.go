package teller

import "strings"

// HistoryReport is a snapshot of an account's balance and full transaction
// log, in the order the entries were recorded.
type HistoryReport struct {
	Balance Money
	Entries []string
}

// HistoryReport returns a snapshot of the current balance and the ordered
// transaction log. The entries are copied; mutating the report does not
// touch the account.
func (a *Account) HistoryReport() *HistoryReport {
	entries := make([]string, len(a.history))
	copy(entries, a.history)
	return &HistoryReport{Balance: a.balance, Entries: entries}
}

// String renders the report as plain text. An empty log renders an explicit
// "No history" marker rather than nothing.
func (r *HistoryReport) String() string {
	var sb strings.Builder
	sb.WriteString("Balance: " + r.Balance.String() + "\n")
	sb.WriteString("Transaction History:\n")
	if len(r.Entries) == 0 {
		sb.WriteString("No history\n")
		return sb.String()
	}
	for _, e := range r.Entries {
		sb.WriteString(e + "\n")
	}
	return sb.String()
}
