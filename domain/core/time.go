package core

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// Equal returns true if t and u represent the same instant
func (t Timestamp) Equal(u Timestamp) bool {
	return time.Time(t).Equal(time.Time(u))
}

// Hour returns the local hour of day in [0, 23]
func (t Timestamp) Hour() int {
	return time.Time(t).Hour()
}

// JSON marshaling for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

// SQL scanning for Timestamp
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*t = Timestamp(v)
		return nil
	case nil:
		*t = Timestamp{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (t Timestamp) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// String returns the RFC3339 representation
func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339)
}
