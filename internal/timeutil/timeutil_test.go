package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 14, 30, 45, 123, time.Local)
	got := StartOfDay(in)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestDayWindow_Boundaries(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	start, end := DayWindow(day)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"exactly at midnight", start, true},
		{"one second after midnight", start.Add(time.Second), true},
		{"last second of day", end.Add(-time.Second), true},
		{"exactly at next midnight", end, false},
		{"one second before midnight", start.Add(-time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.t, start, end); got != tt.want {
				t.Errorf("InRange(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestStartOfWeek_Monday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local),
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		},
		{
			"monday itself",
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		},
		{
			"sunday belongs to preceding monday",
			time.Date(2024, 3, 17, 23, 59, 0, 0, time.Local),
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in, time.Monday)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v, Monday) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOfWeek_Sunday(t *testing.T) {
	// 2024-03-13 is a Wednesday; with a Sunday week start the week begins 2024-03-10
	in := time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local)
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	got := StartOfWeek(in, time.Sunday)
	if !got.Equal(want) {
		t.Errorf("StartOfWeek(%v, Sunday) = %v, want %v", in, got, want)
	}
}

func TestWeekWindow_SpansSevenDays(t *testing.T) {
	in := time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local)
	start, end := WeekWindow(in, time.Monday)
	if got := end.Sub(start); got != 7*24*time.Hour {
		t.Errorf("week window spans %v, want 168h", got)
	}
	if !InRange(in, start, end) {
		t.Error("input time not inside its own week window")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15", time.Local)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"15-03-2024", "2024/03/15", "yesterday", ""} {
		if _, err := ParseDate(s, time.Local); err == nil {
			t.Errorf("ParseDate(%q) expected error, got nil", s)
		}
	}
}
