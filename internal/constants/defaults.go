package constants

type ItemType string

const (
	ItemTask     ItemType = "task"
	ItemExercise ItemType = "exercise"
	ItemActivity ItemType = "activity"
)

type RecurrenceKind string

const (
	RecurrenceDaily  RecurrenceKind = "daily"
	RecurrenceWeekly RecurrenceKind = "weekly"
)

// RandomTime is the sentinel time-of-day for entries whose reminder time is
// chosen non-deterministically. Random entries never produce a concrete
// trigger; see the reminders package.
const RandomTime = "random"
