package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
// The server stores deadlines as dates but may echo them back as full timestamps.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day in UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD or RFC 3339 string
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	y, m, d := t.Date()
	return NewDate(y, m, d), nil
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when zero
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", an RFC 3339 timestamp, or null
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// timestampLayouts are tried in order when decoding a Timestamp
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// Timestamp is a server-side audit time such as created_at.
// Values in an unknown layout are kept verbatim in Raw instead of failing the decode.
type Timestamp struct {
	time.Time
	Raw string
}

// ParseTimestamp parses s with the first matching layout.
// An unrecognised value yields a zero time with Raw set.
func ParseTimestamp(s string) Timestamp {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}
		}
	}
	return Timestamp{Raw: s}
}

// IsZero reports whether neither a time nor a raw value is set
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero() && t.Raw == ""
}

// DateString formats the timestamp as YYYY-MM-DD, falling back to the raw value
func (t Timestamp) DateString() string {
	if t.Time.IsZero() {
		return t.Raw
	}
	return t.Format(DateLayout)
}

// MarshalJSON encodes the time as RFC 3339, the raw value when unparsed, or null
func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case !t.Time.IsZero():
		return json.Marshal(t.Format(time.RFC3339Nano))
	case t.Raw != "":
		return json.Marshal(t.Raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any string or null; it only fails on non-string JSON
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	*t = ParseTimestamp(s)
	return nil
}
