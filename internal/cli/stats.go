package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/streak"
)

type StatsCmd struct {
	Routine string `help:"Limit the streak to a single routine's logs." xor:"scope"`
	Goal    string `help:"Limit the streak to a single goal's logs." xor:"scope"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var (
		logs []models.Log
		err  error
	)
	switch {
	case c.Routine != "":
		logs, err = ctx.Store.GetLogsForRoutine(c.Routine)
	case c.Goal != "":
		logs, err = ctx.Store.GetLogsForGoal(c.Goal)
	default:
		logs, err = ctx.Store.GetAllLogs()
	}
	if err != nil {
		return err
	}

	consistency := streak.Compute(logs, time.Now())

	var counts [4]int
	for _, l := range logs {
		switch l.Kind {
		case models.LogExercise:
			counts[0]++
		case models.LogTask:
			counts[1]++
		case models.LogPhoto:
			counts[2]++
		case models.LogReport:
			counts[3]++
		}
	}

	fmt.Printf("Current streak: %d day(s)\n", consistency.Current)
	fmt.Printf("Longest streak: %d day(s)\n", consistency.Longest)
	fmt.Printf("Active days:    %d\n", consistency.ActiveDays)
	fmt.Printf("Exercises:      %d\n", counts[0])
	fmt.Printf("Tasks:          %d\n", counts[1])
	fmt.Printf("Photos:         %d\n", counts[2])
	fmt.Printf("Reports:        %d\n", counts[3])
	return nil
}
