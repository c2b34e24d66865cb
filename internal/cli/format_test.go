package cli

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 30 * time.Second, "30s"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"whole hours", 2 * time.Hour, "2h"},
		{"hours and minutes", 90 * time.Minute, "1h 30m"},
		{"seconds dropped past a minute", 2*time.Minute + 29*time.Second, "2m"},
		{"negative clamps to zero", -time.Minute, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 30*time.Minute, "2.50"},
		{time.Minute, "0.02"},
		{0, "0.00"},
		{45 * time.Minute, "0.75"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.d); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney("$", 312.5); got != "$312.50" {
		t.Errorf("FormatMoney = %q, want $312.50", got)
	}
	if got := FormatMoney("€", 0); got != "€0.00" {
		t.Errorf("FormatMoney = %q, want €0.00", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate("$", 125); got != "$125.00/h" {
		t.Errorf("FormatRate = %q, want $125.00/h", got)
	}
}

func TestFormatStartTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.Local)

	sameDay := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	if got := FormatStartTime(sameDay, now); got != "today at 9:00 AM" {
		t.Errorf("FormatStartTime same day = %q", got)
	}

	otherDay := time.Date(2024, 3, 14, 23, 30, 0, 0, time.Local)
	if got := FormatStartTime(otherDay, now); got != "Thu Mar 14 at 11:30 PM" {
		t.Errorf("FormatStartTime other day = %q", got)
	}
}
