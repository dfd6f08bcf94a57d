package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the layouts accepted when decoding backend
// timestamps. Naive layouts (without zone) are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a time.Time that decodes the timestamp flavours produced by
// the backend: RFC 3339 with or without fractional seconds, and ISO 8601
// without a zone designator. A null or empty value decodes to the zero time.
// A value matching none of the layouts decodes to the zero time with Raw
// holding the original text.
type Timestamp struct {
	time.Time

	// Raw is the undecodable backend value, empty for valid timestamps.
	Raw string
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s with the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*t = Timestamp{Raw: string(bytes.TrimSpace(b))}
		return nil
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		*t = Timestamp{Raw: raw}
		return nil
	}

	*t = parsed
	return nil
}

// Invalid reports whether the backend sent a value that is not a timestamp.
func (t Timestamp) Invalid() bool {
	return t.Time.IsZero() && t.Raw != ""
}

// MarshalJSON implements json.Marshaler. The zero time is encoded as null,
// an invalid value as its raw text.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Invalid() {
		return json.Marshal(t.Raw)
	}
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
