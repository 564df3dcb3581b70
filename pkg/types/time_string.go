package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString is returned when a string is not a valid HH:MM value.
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a wall-clock time of day in "HH:MM" format.
// The zero value is the empty string and is reported by IsZero.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes converts the value to minutes since midnight.
// Malformed values (wrong length, missing colon, non-digit characters,
// out-of-range components) return ErrInvalidTimeString. Every position is
// checked explicitly: scanners that stop at the first non-digit would let
// values like "11:3Z" or " 9:30" through.
func (t TimeString) Minutes() (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
	}
	hh := int(t[0]-'0')*10 + int(t[1]-'0')
	mm := int(t[3]-'0')*10 + int(t[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hh*60 + mm, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// MarshalJSON encodes the value as a plain JSON string.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON decodes and validates a plain JSON string.
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeBlock is a half-open [Start, End) interval within a single day.
type TimeBlock struct {
	Start TimeString `json:"start" toml:"start"`
	End   TimeString `json:"end" toml:"end"`
}

// Contains reports whether the [start, end) window fits entirely inside the
// block. Malformed times never fit.
func (b TimeBlock) Contains(start, end TimeString) bool {
	s, err := start.Minutes()
	if err != nil {
		return false
	}
	e, err := end.Minutes()
	if err != nil {
		return false
	}
	bs, err := b.Start.Minutes()
	if err != nil {
		return false
	}
	be, err := b.End.Minutes()
	if err != nil {
		return false
	}
	return s >= bs && e <= be
}
