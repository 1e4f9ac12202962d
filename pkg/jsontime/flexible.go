// Package jsontime provides JSON-serializable time types.
package jsontime

import (
	"encoding/json"
	"time"
)

// Flexible is a time.Time that accepts either an RFC 3339 string or a Unix
// millisecond number in JSON. Marshaling always produces RFC 3339.
//
// Job queue backends commonly report processing timestamps as epoch millis
// while database rows carry ISO strings; Flexible absorbs both.
type Flexible time.Time

// Time returns the underlying time.Time value.
func (f Flexible) Time() time.Time {
	return time.Time(f)
}

// IsZero reports whether f represents the zero time instant.
func (f Flexible) IsZero() bool {
	return time.Time(f).IsZero()
}

// Equal reports whether f and t represent the same time instant.
func (f Flexible) Equal(t Flexible) bool {
	return time.Time(f).Equal(time.Time(t))
}

// String returns the time formatted as a string.
func (f Flexible) String() string {
	return time.Time(f).String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flexible) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		*f = Flexible(t)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	*f = Flexible(time.UnixMilli(ms))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flexible) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).Format(time.RFC3339Nano))
}
