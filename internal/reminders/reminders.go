// Package reminders turns item schedules into concrete trigger instants for
// the OS notification facility.
package reminders

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/logger"
	"github.com/julianstephens/vigor/internal/models"
)

// Payload is carried on every trigger so the notification tap handler can
// deep-link back to the right item.
type Payload struct {
	ItemID    string `json:"item_id"`
	RoutineID string `json:"routine_id,omitempty"`
	GoalID    string `json:"goal_id,omitempty"`
	Name      string `json:"name"`
}

// Facility is the OS notification primitive. Implementations deliver; this
// package only decides what to schedule.
type Facility interface {
	CancelAll() error
	ScheduleDaily(timeOfDay string, p Payload) error
	ScheduleWeekly(weekday time.Weekday, timeOfDay string, p Payload) error
}

// Trigger is one concrete reminder slot derived from a schedule entry.
type Trigger struct {
	Weekly    bool
	Weekday   time.Weekday
	TimeOfDay string
	Payload   Payload
}

// Result reports the outcome of a scheduling pass. Per-item failures never
// abort the batch; they are collected here.
type Result struct {
	Scheduled int
	Skipped   int // random entries, never scheduled as concrete triggers
	Errors    []error
}

type Scheduler struct {
	facility Facility
}

func New(facility Facility) *Scheduler {
	return &Scheduler{facility: facility}
}

// Plan computes the trigger set the given items imply, without touching the
// facility. Entries with the random sentinel produce no trigger: resolving
// them to a concrete time is an open gap, surfaced in the plan report
// rather than silently invented here.
func (s *Scheduler) Plan(items []models.Item) ([]Trigger, int) {
	var triggers []Trigger
	skipped := 0

	for _, item := range items {
		payload := Payload{
			ItemID:    item.ID,
			RoutineID: item.RoutineID,
			GoalID:    item.GoalID,
			Name:      item.Name,
		}
		for _, entry := range item.Recurrence.Entries {
			if entry.IsRandom() {
				skipped++
				continue
			}
			t := Trigger{TimeOfDay: entry.TimeOfDay, Payload: payload}
			if item.Recurrence.Kind == constants.RecurrenceWeekly && entry.Weekday != nil {
				t.Weekly = true
				t.Weekday = *entry.Weekday
			}
			triggers = append(triggers, t)
		}
	}

	sort.SliceStable(triggers, func(i, j int) bool {
		if triggers[i].TimeOfDay != triggers[j].TimeOfDay {
			return triggers[i].TimeOfDay < triggers[j].TimeOfDay
		}
		return triggers[i].Payload.Name < triggers[j].Payload.Name
	})

	return triggers, skipped
}

// Reschedule cancels every previously scheduled reminder and schedules the
// full trigger set implied by items. The pass is cancel-and-replace: running
// it twice leaves exactly the trigger set of the second run. A failure on
// one trigger is collected and the rest of the batch continues; permission
// refusals are logged once and skipped.
func (s *Scheduler) Reschedule(items []models.Item) (*Result, error) {
	if err := s.facility.CancelAll(); err != nil {
		return nil, fmt.Errorf("failed to cancel existing reminders: %w", err)
	}

	triggers, skipped := s.Plan(items)
	res := &Result{Skipped: skipped}

	permissionReported := false
	for _, t := range triggers {
		var err error
		if t.Weekly {
			err = s.facility.ScheduleWeekly(t.Weekday, t.TimeOfDay, t.Payload)
		} else {
			err = s.facility.ScheduleDaily(t.TimeOfDay, t.Payload)
		}
		if err == nil {
			res.Scheduled++
			continue
		}

		if vigorerrors.IsPermission(err) {
			if !permissionReported {
				logger.Warn("Notification permission denied, skipping affected reminders", "error", err)
				permissionReported = true
			}
		} else {
			logger.Error("Failed to schedule reminder", "item", t.Payload.ItemID, "error", err)
		}
		res.Errors = append(res.Errors, fmt.Errorf("item %s at %s: %w", t.Payload.ItemID, t.TimeOfDay, err))
	}

	return res, nil
}

// FormatPlan renders a human-readable report of the trigger set, one line
// per trigger, with unschedulable random entries called out at the end.
func FormatPlan(triggers []Trigger, skipped int) string {
	var b strings.Builder

	if len(triggers) == 0 {
		b.WriteString("No reminders to schedule.\n")
	}
	for _, t := range triggers {
		if t.Weekly {
			fmt.Fprintf(&b, "%-9s %s  %s\n", t.Weekday.String(), t.TimeOfDay, t.Payload.Name)
		} else {
			fmt.Fprintf(&b, "%-9s %s  %s\n", "daily", t.TimeOfDay, t.Payload.Name)
		}
	}
	if skipped > 0 {
		fmt.Fprintf(&b, "%d entr%s unscheduled (random time-of-day)\n", skipped, pluralY(skipped))
	}

	return b.String()
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
