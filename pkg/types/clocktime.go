package types

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime represents a time of day with second precision.
// The canonical form is "15:04:05" (24-hour, zero-padded), which keeps
// lexicographic comparison of two values consistent with chronological order.
// Display and input use the clinic's 12-hour clock with an AM/PM designator.
type ClockTime string

const (
	canonicalLayout = "15:04:05"

	// Accepted 12-hour input layouts: booking requests come without seconds,
	// schedule exports come with them.
	clockLayout        = "3:04 PM"
	clockSecondsLayout = "3:04:05 PM"
)

// NewClockTime creates a ClockTime from the time-of-day part of t.
func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(canonicalLayout))
}

// ParseClockTime parses a 12-hour clock string, e.g. "3:30 PM" or "03:30:00 PM".
func ParseClockTime(s string) (ClockTime, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range []string{clockLayout, clockSecondsLayout} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return NewClockTime(t), nil
		}
	}
	return "", fmt.Errorf("invalid clock time %q: expected %q or %q", s, clockLayout, clockSecondsLayout)
}

// Validate checks that the value holds a canonical "15:04:05" time.
func (c ClockTime) Validate() error {
	if _, err := time.Parse(canonicalLayout, string(c)); err != nil {
		return fmt.Errorf("invalid clock time %q: %v", string(c), err)
	}
	return nil
}

// IsZero reports whether the value is empty.
func (c ClockTime) IsZero() bool {
	return c == ""
}

// IsBefore reports whether c is earlier in the day than other.
func (c ClockTime) IsBefore(other ClockTime) bool {
	return c < other
}

// IsAfter reports whether c is later in the day than other.
func (c ClockTime) IsAfter(other ClockTime) bool {
	return c > other
}

// Canonical returns the canonical 24-hour representation.
func (c ClockTime) Canonical() string {
	return string(c)
}

// String formats the value in the 12-hour clock used for display, e.g. "3:30 PM".
// Invalid values are returned as-is.
func (c ClockTime) String() string {
	t, err := time.Parse(canonicalLayout, string(c))
	if err != nil {
		return string(c)
	}
	return t.Format(clockLayout)
}
