package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
)

// ScheduleEntry is a single reminder slot within a recurrence rule. TimeOfDay
// is either an HH:MM clock string or the "random" sentinel. Weekday is set
// only for weekly rules.
type ScheduleEntry struct {
	TimeOfDay string        `json:"time_of_day"`
	Weekday   *time.Weekday `json:"weekday,omitempty"`
}

// IsRandom reports whether the entry uses the random time-of-day sentinel.
func (e ScheduleEntry) IsRandom() bool {
	return e.TimeOfDay == constants.RandomTime
}

// Minutes returns the entry's time of day as minutes from midnight. Random
// entries sort after every concrete clock time, so they report a value larger
// than any valid HH:MM.
func (e ScheduleEntry) Minutes() int {
	if e.IsRandom() {
		return 24 * 60
	}
	t, err := time.Parse(constants.TimeFormat, e.TimeOfDay)
	if err != nil {
		return 24 * 60
	}
	return t.Hour()*60 + t.Minute()
}

// Recurrence describes when an item recurs. An empty Entries list means the
// item is unscheduled: shown in listings but never pending and never reminded.
type Recurrence struct {
	Kind    constants.RecurrenceKind `json:"kind"`
	Entries []ScheduleEntry          `json:"entries,omitempty"`
}

// Scheduled reports whether the rule has at least one schedule entry.
func (r Recurrence) Scheduled() bool {
	return len(r.Entries) > 0
}

// EarliestMinutes returns the earliest entry's minutes-from-midnight, used
// for ordering pending items. Rules with only random entries sort last.
func (r Recurrence) EarliestMinutes() int {
	earliest := 24 * 60
	for _, e := range r.Entries {
		if m := e.Minutes(); m < earliest {
			earliest = m
		}
	}
	return earliest
}

func (r Recurrence) Validate() error {
	if !r.Scheduled() {
		return nil
	}

	switch r.Kind {
	case constants.RecurrenceDaily, constants.RecurrenceWeekly:
	default:
		return fmt.Errorf("invalid recurrence kind: %q", r.Kind)
	}

	for _, e := range r.Entries {
		if !e.IsRandom() {
			if _, err := time.Parse(constants.TimeFormat, e.TimeOfDay); err != nil {
				return fmt.Errorf("invalid time of day %q (expected HH:MM or %q): %w", e.TimeOfDay, constants.RandomTime, err)
			}
		}
		if r.Kind == constants.RecurrenceWeekly && e.Weekday == nil {
			return fmt.Errorf("weekly schedule entry must specify a weekday")
		}
		if r.Kind == constants.RecurrenceDaily && e.Weekday != nil {
			return fmt.Errorf("daily schedule entry must not specify a weekday")
		}
	}

	return nil
}

// DueOn reports whether the rule makes its item due on the given date. Daily
// rules are due every day; weekly rules only on days matching an entry's
// weekday. Unscheduled rules are never due.
func (r Recurrence) DueOn(date time.Time) bool {
	if !r.Scheduled() {
		return false
	}

	switch r.Kind {
	case constants.RecurrenceDaily:
		return true
	case constants.RecurrenceWeekly:
		for _, e := range r.Entries {
			if e.Weekday != nil && *e.Weekday == date.Weekday() {
				return true
			}
		}
		return false
	default:
		return false
	}
}
