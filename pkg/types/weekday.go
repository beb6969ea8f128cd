package types

import (
	"fmt"
	"strings"
)

// Weekday names a day of the week in the storage format used for a
// supermarket's open-day set (uppercase English day names).
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var weekdays = map[Weekday]struct{}{
	Monday:    {},
	Tuesday:   {},
	Wednesday: {},
	Thursday:  {},
	Friday:    {},
	Saturday:  {},
	Sunday:    {},
}

func (w Weekday) IsValid() bool {
	_, ok := weekdays[w]
	return ok
}

func (w Weekday) String() string {
	return string(w)
}

// ParseWeekday accepts a day name in any case and returns the canonical
// Weekday value.
func ParseWeekday(value string) (Weekday, error) {
	day := Weekday(strings.ToUpper(strings.TrimSpace(value)))
	if !day.IsValid() {
		return "", fmt.Errorf("invalid weekday %q", value)
	}
	return day, nil
}
