// Package clock provides time information for the tracker and reports.
// The interface allows time to be pinned in tests so day and week
// windows are reproducible.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// RealClock provides actual system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// TestClock provides a settable fixed time for testing.
type TestClock struct {
	CurrentTime time.Time
}

// Now returns the fixed time.
func (t *TestClock) Now() time.Time {
	return t.CurrentTime
}

// Advance moves the fixed time forward by d.
func (t *TestClock) Advance(d time.Duration) {
	t.CurrentTime = t.CurrentTime.Add(d)
}
