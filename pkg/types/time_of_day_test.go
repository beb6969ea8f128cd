package types

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod.Hour != 9 || tod.Minute != 30 {
		t.Fatalf("unexpected value %+v", tod)
	}
	if tod.String() != "09:30" {
		t.Fatalf("expected zero-padded string, got %q", tod.String())
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
	if _, err := ParseTimeOfDay("9am"); err == nil {
		t.Fatal("expected error for non HH:MM input")
	}
}

func TestTimeOfDayBetweenIsInclusive(t *testing.T) {
	opensAt, _ := ParseTimeOfDay("08:00")
	closesAt, _ := ParseTimeOfDay("20:00")

	for _, tt := range []struct {
		value string
		want  bool
	}{
		{"08:00", true},
		{"20:00", true},
		{"12:15", true},
		{"07:59", false},
		{"20:01", false},
	} {
		tod, _ := ParseTimeOfDay(tt.value)
		if got := tod.Between(opensAt, closesAt); got != tt.want {
			t.Fatalf("Between(%s) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod, _ := ParseTimeOfDay("17:45")
	raw, err := json.Marshal(tod)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"17:45"` {
		t.Fatalf("unexpected JSON %s", raw)
	}

	var back TimeOfDay
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != tod {
		t.Fatalf("round trip mismatch: %v != %v", back, tod)
	}
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan("06:05"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if tod.String() != "06:05" {
		t.Fatalf("unexpected scanned value %q", tod.String())
	}
	if err := tod.Scan([]byte("23:59")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if err := tod.Scan(42); err == nil {
		t.Fatal("expected error scanning unsupported type")
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("monday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != Monday {
		t.Fatalf("expected MONDAY, got %s", day)
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}
