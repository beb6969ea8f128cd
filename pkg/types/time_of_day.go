package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, persisted as "HH:MM".
// Zero-padded 24h strings compare chronologically, so it is stored in a
// plain text column and works identically on Postgres and SQLite.
type TimeOfDay struct {
	Hour   int
	Minute int
}

const timeOfDayLayout = "15:04"

// ParseTimeOfDay reads an "HH:MM" string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// Compare returns -1, 0 or 1 like strings.Compare.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.minutes() < other.minutes():
		return -1
	case t.minutes() > other.minutes():
		return 1
	default:
		return 0
	}
}

// Between reports whether t lies in [from, to], inclusive on both bounds.
func (t TimeOfDay) Between(from, to TimeOfDay) bool {
	return t.Compare(from) >= 0 && t.Compare(to) <= 0
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}
