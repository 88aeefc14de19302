package badges

import (
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/streak"
)

// Counts holds the cumulative log totals a badge condition may reference.
type Counts struct {
	Exercises int
	Tasks     int
	Photos    int
	Reports   int
}

// Condition is a pure predicate over accumulated progress. Conditions are
// re-checkable; the engine consults persisted status to guarantee
// at-most-once awards.
type Condition func(c Counts, s streak.Consistency) bool

// Definition pairs a badge with its earning condition.
type Definition struct {
	models.Badge
	Earned Condition
}

// Table is the full badge catalog. Evaluation iterates this slice in order,
// so declaration order is the award order when several thresholds are
// crossed in one batch.
var Table = []Definition{
	{
		Badge:  models.Badge{Key: "first_exercise", Name: "First Rep", Description: "Complete your first exercise.", Level: models.BadgeBronze, Icon: "medal-bronze", XP: 10},
		Earned: exercises(1),
	},
	{
		Badge:  models.Badge{Key: "exercise_10", Name: "Warmed Up", Description: "Complete 10 exercises.", Level: models.BadgeBronze, Icon: "medal-bronze", XP: 25},
		Earned: exercises(10),
	},
	{
		Badge:  models.Badge{Key: "exercise_30", Name: "In Motion", Description: "Complete 30 exercises.", Level: models.BadgeSilver, Icon: "medal-silver", XP: 50},
		Earned: exercises(30),
	},
	{
		Badge:  models.Badge{Key: "exercise_100", Name: "Relentless", Description: "Complete 100 exercises.", Level: models.BadgeGold, Icon: "medal-gold", XP: 100},
		Earned: exercises(100),
	},
	{
		Badge:  models.Badge{Key: "first_task", Name: "Checked Off", Description: "Complete your first task.", Level: models.BadgeBronze, Icon: "check-bronze", XP: 10},
		Earned: tasks(1),
	},
	{
		Badge:  models.Badge{Key: "task_25", Name: "List Crusher", Description: "Complete 25 tasks.", Level: models.BadgeSilver, Icon: "check-silver", XP: 50},
		Earned: tasks(25),
	},
	{
		Badge:  models.Badge{Key: "task_100", Name: "Machine", Description: "Complete 100 tasks.", Level: models.BadgeGold, Icon: "check-gold", XP: 100},
		Earned: tasks(100),
	},
	{
		Badge:  models.Badge{Key: "first_photo", Name: "Say Cheese", Description: "Take your first progress photo.", Level: models.BadgeBronze, Icon: "camera-bronze", XP: 10},
		Earned: photos(1),
	},
	{
		Badge:  models.Badge{Key: "photo_30", Name: "Documented", Description: "Take 30 progress photos.", Level: models.BadgeSilver, Icon: "camera-silver", XP: 50},
		Earned: photos(30),
	},
	{
		Badge:  models.Badge{Key: "streak_3", Name: "Kindling", Description: "Stay active 3 days in a row.", Level: models.BadgeBronze, Icon: "flame-bronze", XP: 25},
		Earned: currentStreak(3),
	},
	{
		Badge:  models.Badge{Key: "streak_7", Name: "On Fire", Description: "Stay active 7 days in a row.", Level: models.BadgeSilver, Icon: "flame-silver", XP: 50},
		Earned: currentStreak(7),
	},
	{
		Badge:  models.Badge{Key: "streak_30", Name: "Unbroken", Description: "Stay active 30 days in a row.", Level: models.BadgeGold, Icon: "flame-gold", XP: 150},
		Earned: currentStreak(30),
	},
	{
		Badge: models.Badge{Key: "iron_will", Name: "Iron Will", Description: "Complete 200 exercises and take 200 progress photos.", Level: models.BadgePlatinum, Icon: "trophy-platinum", XP: 500},
		Earned: func(c Counts, s streak.Consistency) bool {
			return c.Exercises >= 200 && c.Photos >= 200
		},
	},
}

// Find returns the static badge definition for a key.
func Find(key string) (Definition, bool) {
	for _, d := range Table {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

func exercises(n int) Condition {
	return func(c Counts, _ streak.Consistency) bool { return c.Exercises >= n }
}

func tasks(n int) Condition {
	return func(c Counts, _ streak.Consistency) bool { return c.Tasks >= n }
}

func photos(n int) Condition {
	return func(c Counts, _ streak.Consistency) bool { return c.Photos >= n }
}

func currentStreak(n int) Condition {
	return func(_ Counts, s streak.Consistency) bool { return s.Current >= n }
}
