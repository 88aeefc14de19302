// Package pending reconciles scheduled items against today's log history to
// determine which recurring items are still outstanding.
package pending

import (
	"sort"
	"time"

	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/utils"
)

// Today returns the items that are due on now's calendar date and have no
// matching completion log on that date. Items with an empty schedule are
// never pending: they are backlog items, shown elsewhere but never due.
// Multiple completions of the same item on one day are allowed in the log
// but the item is pending at most once per day.
func Today(items []models.Item, todaysLogs []models.Log, now time.Time) []models.Item {
	today := utils.Today(now)

	done := make(map[string]bool, len(todaysLogs))
	for _, l := range todaysLogs {
		if l.ItemID != "" && l.Day() == today {
			done[l.ItemID] = true
		}
	}

	var out []models.Item
	for _, item := range items {
		if !item.Recurrence.DueOn(now) {
			continue
		}
		if done[item.ID] {
			continue
		}
		out = append(out, item)
	}

	// Earliest scheduled time first; random-only schedules sort after every
	// concrete clock time; ties break on name.
	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := out[i].Recurrence.EarliestMinutes(), out[j].Recurrence.EarliestMinutes()
		if mi != mj {
			return mi < mj
		}
		return out[i].Name < out[j].Name
	})

	return out
}
