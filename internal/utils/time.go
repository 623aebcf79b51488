package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISODate = "2006-01-02"
	layoutDMY     = "02/01/2006"
)

// Today returns the operator's local calendar date at midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// ParseDMY parses a DD/MM/YYYY field in the local timezone.
func ParseDMY(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(layoutDMY, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY", s)
	}
	return t, nil
}

// FormatDMY formats a date as DD/MM/YYYY.
func FormatDMY(t time.Time) string {
	return t.In(time.Local).Format(layoutDMY)
}

// ParseISODate parses YYYY-MM-DD in local timezone (storage format).
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutISODate, strings.TrimSpace(s), time.Local)
}

// FormatISODate formats a date as YYYY-MM-DD (storage format).
func FormatISODate(t time.Time) string {
	return t.In(time.Local).Format(layoutISODate)
}

// AddDays advances a date by whole calendar days, no timezone shift.
func AddDays(t time.Time, days int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the calendar-day distance from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
