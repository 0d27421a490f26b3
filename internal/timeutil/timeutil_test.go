package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2023-10-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2023-10-10" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("10/10/2023"); err == nil {
		t.Fatal("expected error for non-canonical layout")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 10, 13, 0, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("expected 0 days for same date, got %d", got)
	}
}
