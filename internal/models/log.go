package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
)

type LogKind string

const (
	LogExercise LogKind = "exercise"
	LogTask     LogKind = "task"
	LogPhoto    LogKind = "photo"
	LogReport   LogKind = "report"
)

// Log is a single completion record. Logs are append-only: never edited after
// creation, only superseded by newer logs. CompletedAt is the sole source for
// all calendar-day bucketing.
type Log struct {
	ID          string    `json:"id"`
	Kind        LogKind   `json:"kind"`
	ItemID      string    `json:"item_id,omitempty"`
	RoutineID   string    `json:"routine_id,omitempty"`
	GoalID      string    `json:"goal_id,omitempty"`
	CompletedAt time.Time `json:"completed_at"`

	// Kind-specific payload.
	Note        string `json:"note,omitempty"`
	PhotoPath   string `json:"photo_path,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`
	Mood        int    `json:"mood,omitempty"`
}

func (l *Log) Validate() error {
	switch l.Kind {
	case LogExercise, LogTask, LogPhoto, LogReport:
	default:
		return fmt.Errorf("invalid log kind: %q", l.Kind)
	}
	if l.CompletedAt.IsZero() {
		return fmt.Errorf("log must have a completion timestamp")
	}
	return nil
}

// Day returns the local calendar date of the completion timestamp.
func (l *Log) Day() string {
	return l.CompletedAt.Format(constants.DateFormat)
}
