package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is a point in time that serializes as RFC 3339 but also accepts
// the epoch-milliseconds numbers written by older clients.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to milliseconds, the precision both
// encodings can carry.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Millisecond)}
}

// MarshalJSON encodes the zero value as null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null, an RFC 3339 string, or epoch milliseconds.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			ts.Time = time.Time{}
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		ts.Time = t.UTC()
		return nil
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	ts.Time = time.UnixMilli(ms).UTC()
	return nil
}
