package teller

import (
	"fmt"
	"strings"
	"time"
)

// birthDateFormat is the permissive M/D/YYYY form the accounts file stores
// (single-digit month and day, no padding).
const birthDateFormat = "1/2/2006"

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the Date for the given year, month, and day, or an error
// if they do not name a real calendar date (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, fmt.Errorf("not a valid calendar date: %d/%d/%d", int(month), day, year)
	}
	return Date{y: y, m: m, d: d}, nil
}

// ParseDate parses the M/D/YYYY text form used by the accounts file.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(birthDateFormat, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date())
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date back into the unpadded M/D/YYYY wire form.
func (d Date) String() string { return fmt.Sprintf("%d/%d/%d", int(d.m), d.d, d.y) }
