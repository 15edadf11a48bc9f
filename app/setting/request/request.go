// Package request contains event types emitted by the save engine to its
// collaborators (history recording, notifications).
package request

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Outcome is the terminal result of one save pass.
type Outcome string

// Save outcomes.
const (
	OutcomeSaved  Outcome = "saved"
	OutcomeFailed Outcome = "failed"
)

// ParseOutcome converts a string to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeSaved, OutcomeFailed:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

func (o Outcome) String() string { return string(o) }

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Value implements driver.Valuer for database storage.
func (o Outcome) Value() (driver.Value, error) { return string(o), nil }

// Scan implements sql.Scanner for database retrieval.
func (o *Outcome) Scan(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseOutcome(v)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	case []byte:
		parsed, err := ParseOutcome(string(v))
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Outcome", value)
}

// SaveEvent describes one completed save pass for a category file.
type SaveEvent struct {
	Category string
	File     string
	Outcome  Outcome
	Attempts int
	Took     time.Duration
	At       time.Time
}
