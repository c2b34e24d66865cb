// Package model defines the core data types shared across the worklog
// application: projects and the work entries tracked against them.
package model

import "time"

// BillingMode determines whether a project's tracked time is converted
// to a monetary amount.
type BillingMode string

const (
	// BillingFlat projects report duration only; no amount is computed.
	BillingFlat BillingMode = "flat"
	// BillingHourly projects are billed as hourly rate times tracked hours.
	BillingHourly BillingMode = "hourly"
)

// Valid reports whether the billing mode is one of the known values.
func (m BillingMode) Valid() bool {
	return m == BillingFlat || m == BillingHourly
}

// Project is a named bucket that work entries are tracked against.
type Project struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Billing    BillingMode `json:"billing"`
	HourlyRate float64     `json:"hourly_rate"` // meaningful only when Billing is BillingHourly
}

// BilledHourly reports whether tracked time on this project produces a
// monetary amount.
func (p Project) BilledHourly() bool {
	return p.Billing == BillingHourly && p.HourlyRate > 0
}

// WorkEntry is a single tracked session. An entry with a nil EndTime is
// open: work on it is currently in progress. At most one entry in the
// store is open at any time.
type WorkEntry struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// Open reports whether the entry has no recorded end time.
func (e WorkEntry) Open() bool {
	return e.EndTime == nil
}

// Duration returns the exact elapsed time of a closed entry.
// Returns 0 for open entries; reports never estimate in-progress work.
func (e WorkEntry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}
