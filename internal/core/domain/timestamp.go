package domain

import "time"

// TimestampLayout is the zone-less ISO 8601 layout used in every dataset.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp is a wall-clock time serialized without a zone offset.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as a quoted TimestampLayout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(TimestampLayout)+2)
	b = append(b, '"')
	b = t.Time.AppendFormat(b, TimestampLayout)
	return append(b, '"'), nil
}

// UnmarshalJSON parses a quoted TimestampLayout string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(`"`+TimestampLayout+`"`, string(data))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
