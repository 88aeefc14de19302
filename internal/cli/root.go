package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/catalog"
	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Catalog *catalog.Catalog
	Badges  *badges.Engine
}

// Resolver builds a catalog resolver over the context's store.
func (c *Context) Resolver() *catalog.Resolver {
	return catalog.NewResolver(c.Store, c.Catalog)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// ParseSchedule parses a comma-separated list of schedule entries into a
// recurrence rule. Daily entries are plain times ("07:00" or "random");
// weekly entries prefix a weekday ("wed@07:00").
func ParseSchedule(s string) (models.Recurrence, error) {
	if strings.TrimSpace(s) == "" {
		return models.Recurrence{}, nil
	}

	rec := models.Recurrence{Kind: constants.RecurrenceDaily}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var entry models.ScheduleEntry
		if day, tod, found := strings.Cut(part, "@"); found {
			weekdays, err := ParseWeekdays(day)
			if err != nil {
				return models.Recurrence{}, err
			}
			rec.Kind = constants.RecurrenceWeekly
			entry.Weekday = &weekdays[0]
			entry.TimeOfDay = strings.TrimSpace(tod)
		} else {
			entry.TimeOfDay = part
		}
		rec.Entries = append(rec.Entries, entry)
	}

	if err := rec.Validate(); err != nil {
		return models.Recurrence{}, err
	}
	return rec, nil
}

// FormatRecurrence formats a recurrence rule into a human-readable string
func FormatRecurrence(rec models.Recurrence) string {
	if !rec.Scheduled() {
		return "unscheduled"
	}

	var slots []string
	for _, e := range rec.Entries {
		if rec.Kind == constants.RecurrenceWeekly && e.Weekday != nil {
			slots = append(slots, fmt.Sprintf("%s %s", e.Weekday.String()[:3], e.TimeOfDay))
		} else {
			slots = append(slots, e.TimeOfDay)
		}
	}

	switch rec.Kind {
	case constants.RecurrenceWeekly:
		return fmt.Sprintf("weekly at %s", strings.Join(slots, ", "))
	default:
		return fmt.Sprintf("daily at %s", strings.Join(slots, ", "))
	}
}
