package domain

import (
	"fmt"
	"time"
)

// dateKeyLayout is the canonical YYYY-MM-DD format for date keys.
const dateKeyLayout = "2006-01-02"

// DateKey identifies one local calendar day. Two timestamps on the same
// local calendar day always produce an identical key, regardless of
// time-of-day. Keys are formed in the timestamp's own location, never by
// converting through UTC, so a record logged at 23:58 stays on that day.
type DateKey string

// NewDateKey normalizes a timestamp to its local calendar day.
func NewDateKey(t time.Time) (DateKey, error) {
	if t.IsZero() {
		return "", ErrInvalidTimestamp
	}
	return DateKey(t.Format(dateKeyLayout)), nil
}

// ParseDateKey validates and returns a date key from its string form.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.ParseInLocation(dateKeyLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	// Reject non-canonical spellings like "2024-1-2".
	if t.Format(dateKeyLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateKey(s), nil
}

// Time returns local midnight of the key's calendar day.
func (k DateKey) Time() time.Time {
	t, _ := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	return t
}

// Previous returns the key for the immediately preceding calendar day.
func (k DateKey) Previous() DateKey {
	return DateKey(k.Time().AddDate(0, 0, -1).Format(dateKeyLayout))
}

// Next returns the key for the immediately following calendar day.
func (k DateKey) Next() DateKey {
	return DateKey(k.Time().AddDate(0, 0, 1).Format(dateKeyLayout))
}

// Weekday returns the local calendar weekday of the key. Aggregation code
// goes through this accessor so locale concerns stay out of it.
func (k DateKey) Weekday() time.Weekday {
	return k.Time().Weekday()
}

func (k DateKey) String() string {
	return string(k)
}
