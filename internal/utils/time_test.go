package utils

import (
	"testing"
	"time"
)

func TestParseDMYRoundTrip(t *testing.T) {
	d, err := ParseDMY("05/03/2026")
	if err != nil {
		t.Fatalf("ParseDMY error: %v", err)
	}
	if FormatDMY(d) != "05/03/2026" {
		t.Fatalf("round trip mismatch: %s", FormatDMY(d))
	}
}

func TestParseDMYRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "2026-03-05", "31/02/2026", "5 March"} {
		if _, err := ParseDMY(in); err == nil {
			t.Fatalf("ParseDMY(%q) should fail", in)
		}
	}
}

func TestAddDaysAndDaysBetween(t *testing.T) {
	base := time.Date(2026, 1, 30, 0, 0, 0, 0, time.Local)
	due := AddDays(base, 15)
	if FormatISODate(due) != "2026-02-14" {
		t.Fatalf("AddDays crossed month wrong: %s", FormatISODate(due))
	}
	if got := DaysBetween(base, due); got != 15 {
		t.Fatalf("DaysBetween = %d, want 15", got)
	}
	if got := DaysBetween(due, base); got != -15 {
		t.Fatalf("DaysBetween reversed = %d, want -15", got)
	}
}
