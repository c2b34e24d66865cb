// Package timeutil provides calendar window math for reports.
// Day and week windows are half-open intervals: an entry starting
// exactly at midnight belongs to that day, one starting exactly at the
// next midnight does not.
package timeutil

import (
	"fmt"
	"time"
)

// DateFormat is the date layout accepted by the day and week commands.
const DateFormat = "2006-01-02"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayWindow returns the half-open window [00:00, +24h) covering the
// calendar day of t.
func DayWindow(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// StartOfWeek returns 00:00:00 of the first day of the week containing t.
// weekStart is either time.Monday (ISO standard) or time.Sunday.
// Handles the Sunday edge case where Go's Weekday() returns 0.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := int(t.Weekday()) - int(weekStart)
	if offset < 0 {
		offset += 7
	}
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// WeekWindow returns the half-open window [week start, +7d) covering
// the week of t.
func WeekWindow(t time.Time, weekStart time.Weekday) (start, end time.Time) {
	start = StartOfWeek(t, weekStart)
	return start, start.AddDate(0, 0, 7)
}

// InRange reports whether t falls within the half-open range [start, end).
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// ParseDate parses a YYYY-MM-DD date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
