// Package report rolls closed work entries up into day and week
// reports with billing. Reports are pure views: they never read the
// current time for in-progress work, so the same request over the same
// data always yields the same result.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/xolan/worklog/internal/clock"
	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/store"
	"github.com/xolan/worklog/internal/timeutil"
)

// UnknownProjectName labels the synthetic bucket collecting entries
// whose project has been deleted. It sorts after all real projects.
const UnknownProjectName = "(unknown project)"

// EntryLine is one closed entry as it appears in a day report.
type EntryLine struct {
	Description string
	Start       time.Time
	End         time.Time
	Duration    time.Duration
}

// ProjectTotal is the rollup for one project within a report window.
type ProjectTotal struct {
	Name     string
	Project  *model.Project // nil for the unknown-project bucket
	Entries  []EntryLine
	Total    time.Duration
	Billable bool    // true for hourly projects with a rate
	Amount   float64 // rate * hours; 0 when not billable
}

// DayReport is the per-project rollup of one calendar day.
type DayReport struct {
	Date     time.Time // midnight starting the day
	Projects []ProjectTotal
	Total    time.Duration
	Amount   float64
}

// WeekReport covers seven consecutive days from the configured week
// start. Week totals equal the sum of the constituent day totals.
type WeekReport struct {
	Start    time.Time // first day, midnight
	End      time.Time // exclusive
	Days     []DayReport
	Projects []ProjectTotal // per-project week totals, entry lists omitted
	Total    time.Duration
	Amount   float64
}

// Reporter computes day and week reports from the store.
type Reporter struct {
	store     *store.Store
	clock     clock.Clock
	weekStart time.Weekday
}

// New creates a Reporter. weekStart is time.Monday or time.Sunday.
func New(s *store.Store, c clock.Clock, weekStart time.Weekday) *Reporter {
	return &Reporter{store: s, clock: c, weekStart: weekStart}
}

// Day reports the calendar day containing date. An entry belongs to the
// day its start instant falls on, cross-midnight entries included.
func (r *Reporter) Day(date time.Time) (*DayReport, error) {
	start, end := timeutil.DayWindow(date)

	entries, err := r.store.FindEntriesInRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	projects, total, amount, err := r.rollup(entries)
	if err != nil {
		return nil, err
	}

	return &DayReport{
		Date:     start,
		Projects: projects,
		Total:    total,
		Amount:   amount,
	}, nil
}

// Week reports the week containing date: one DayReport per day plus
// per-project and grand totals summed across the days.
func (r *Reporter) Week(date time.Time) (*WeekReport, error) {
	start, end := timeutil.WeekWindow(date, r.weekStart)

	week := &WeekReport{Start: start, End: end}
	weekly := make(map[string]*ProjectTotal)

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		dayReport, err := r.Day(day)
		if err != nil {
			return nil, err
		}
		week.Days = append(week.Days, *dayReport)
		week.Total += dayReport.Total
		week.Amount += dayReport.Amount

		for _, pt := range dayReport.Projects {
			wt, ok := weekly[pt.Name]
			if !ok {
				wt = &ProjectTotal{Name: pt.Name, Project: pt.Project, Billable: pt.Billable}
				weekly[pt.Name] = wt
			}
			wt.Total += pt.Total
			wt.Amount += pt.Amount
		}
	}

	for _, wt := range weekly {
		week.Projects = append(week.Projects, *wt)
	}
	sortProjectTotals(week.Projects)

	return week, nil
}

// Today reports the current day per the reporter's clock.
func (r *Reporter) Today() (*DayReport, error) {
	return r.Day(r.clock.Now())
}

// Yesterday reports the day before the current day.
func (r *Reporter) Yesterday() (*DayReport, error) {
	return r.Day(r.clock.Now().AddDate(0, 0, -1))
}

// rollup groups closed entries by project, summing durations as whole
// seconds and converting to hours only for the final rate
// multiplication, so many small entries cannot accumulate cent drift.
func (r *Reporter) rollup(entries []model.WorkEntry) ([]ProjectTotal, time.Duration, float64, error) {
	type bucket struct {
		total   *ProjectTotal
		seconds int64
	}

	buckets := make(map[string]*bucket)
	projectCache := make(map[int64]*model.Project)

	for _, e := range entries {
		project, ok := projectCache[e.ProjectID]
		if !ok {
			var err error
			project, err = r.store.GetProject(e.ProjectID)
			if err != nil {
				return nil, 0, 0, fmt.Errorf("failed to load project: %w", err)
			}
			projectCache[e.ProjectID] = project
		}

		// Entries referencing a deleted project degrade into one
		// shared bucket rather than failing the report.
		name := UnknownProjectName
		if project != nil {
			name = project.Name
		}

		b, ok := buckets[name]
		if !ok {
			b = &bucket{total: &ProjectTotal{
				Name:     name,
				Project:  project,
				Billable: project != nil && project.BilledHourly(),
			}}
			buckets[name] = b
		}

		d := e.Duration()
		b.seconds += int64(d / time.Second)
		b.total.Entries = append(b.total.Entries, EntryLine{
			Description: e.Description,
			Start:       e.StartTime,
			End:         *e.EndTime,
			Duration:    d,
		})
	}

	var (
		projects    []ProjectTotal
		totalSec    int64
		totalAmount float64
	)
	for _, b := range buckets {
		b.total.Total = time.Duration(b.seconds) * time.Second
		if b.total.Billable {
			hours := float64(b.seconds) / 3600
			b.total.Amount = b.total.Project.HourlyRate * hours
		}
		totalSec += b.seconds
		totalAmount += b.total.Amount
		projects = append(projects, *b.total)
	}
	sortProjectTotals(projects)

	return projects, time.Duration(totalSec) * time.Second, totalAmount, nil
}

// sortProjectTotals orders rollups alphabetically by project name, with
// the unknown-project bucket last, for stable output independent of
// entry insertion order.
func sortProjectTotals(projects []ProjectTotal) {
	sort.Slice(projects, func(i, j int) bool {
		if (projects[i].Name == UnknownProjectName) != (projects[j].Name == UnknownProjectName) {
			return projects[j].Name == UnknownProjectName
		}
		return projects[i].Name < projects[j].Name
	})
}
