// Package streak computes consistency statistics over an unbounded,
// irregularly-spaced log history.
package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/utils"
)

// Consistency summarizes a log history as streaks of consecutive active
// calendar days.
type Consistency struct {
	Current    int `json:"current_streak"`
	Longest    int `json:"longest_streak"`
	ActiveDays int `json:"total_active_days"`
}

// Compute derives consistency stats from the given logs relative to today.
// Every log counts toward its local calendar date; multiple logs on one date
// count that date once. A day with no log yet does not break the current
// streak until it is over: a run ending yesterday still counts as current.
//
// Cost is O(n log n) in the number of logs, independent of the date range.
func Compute(logs []models.Log, now time.Time) Consistency {
	if len(logs) == 0 {
		return Consistency{}
	}

	seen := make(map[string]time.Time, len(logs))
	for _, l := range logs {
		day := utils.DateOnly(l.CompletedAt)
		seen[l.Day()] = day
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	c := Consistency{ActiveDays: len(dates)}

	// Walk maximal runs of consecutive days. A gap of exactly one day
	// continues a run; anything larger starts a new one.
	runLen := 1
	for i := 1; i <= len(dates); i++ {
		if i < len(dates) && dates[i].Sub(dates[i-1]) <= 25*time.Hour {
			runLen++
			continue
		}

		if runLen > c.Longest {
			c.Longest = runLen
		}

		last := dates[i-1]
		today := utils.DateOnly(now)
		yesterday := today.AddDate(0, 0, -1)
		if last.Equal(today) || last.Equal(yesterday) {
			c.Current = runLen
		}

		if i < len(dates) {
			runLen = 1
		}
	}

	return c
}
