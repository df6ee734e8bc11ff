package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage representation of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component, represented as
// "YYYY-MM-DD". The representation is chosen so that lexicographic comparison
// of two Dates matches chronological order.
type Date string

// ParseDate validates and normalizes a calendar date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("could not parse date %q: %w", s, err)
	}

	return Date(t.Format(DateLayout)), nil
}

// DateOf truncates a point in time to its UTC calendar date.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// Time returns the date as a time.Time at midnight UTC. The zero time is
// returned for a malformed Date.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}

	return t
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

func (d Date) String() string { return string(d) }
