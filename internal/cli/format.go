// Package cli provides output formatting for the worklog commands.
package cli

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as a human-readable string.
// Examples: "30s", "45m", "2h", "1h 30m"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int64(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours == 0 && minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatHours formats a duration as decimal hours with two digits.
// Example: 2h30m -> "2.50"
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d/time.Second)/3600)
}

// FormatMoney formats a billed amount with the configured currency
// symbol. Example: "$312.50"
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// FormatRate formats an hourly rate. Example: "$125.00/h"
func FormatRate(symbol string, rate float64) string {
	return fmt.Sprintf("%s%.2f/h", symbol, rate)
}

// FormatClock formats an instant as a 24h wall-clock time.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate formats a date for report headers.
// Example: "Friday, March 15, 2024"
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatStartTime formats a session start instant for status output,
// relative to now. Examples: "today at 9:00 AM", "Thu Mar 14 at 11:30 PM"
func FormatStartTime(startedAt, now time.Time) string {
	startTime := startedAt.Format("3:04 PM")

	isToday := startedAt.Year() == now.Year() &&
		startedAt.Month() == now.Month() &&
		startedAt.Day() == now.Day()

	if isToday {
		return fmt.Sprintf("today at %s", startTime)
	}
	return fmt.Sprintf("%s at %s", startedAt.Format("Mon Jan 2"), startTime)
}
