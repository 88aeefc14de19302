package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/storage"
	"github.com/julianstephens/vigor/internal/utils"
)

type LogCmd struct {
	Exercise LogExerciseCmd `cmd:"" help:"Log a completed exercise."`
	Task     LogTaskCmd     `cmd:"" help:"Log a completed task."`
	Photo    LogPhotoCmd    `cmd:"" help:"Log a progress photo."`
	Report   LogReportCmd   `cmd:"" help:"Log a daily report."`
	List     LogListCmd     `cmd:"" help:"List logs for a day."`
}

type LogExerciseCmd struct {
	Item     string `arg:"" help:"Item id of the completed exercise."`
	Duration int    `help:"Duration in minutes."`
	Note     string `help:"Optional note."`
}

func (c *LogExerciseCmd) Run(ctx *Context) error {
	return appendLog(ctx, models.Log{
		Kind:        models.LogExercise,
		ItemID:      c.Item,
		Note:        c.Note,
		DurationMin: c.Duration,
	})
}

type LogTaskCmd struct {
	Item string `arg:"" help:"Item id of the completed task."`
	Note string `help:"Optional note."`
}

func (c *LogTaskCmd) Run(ctx *Context) error {
	return appendLog(ctx, models.Log{
		Kind:   models.LogTask,
		ItemID: c.Item,
		Note:   c.Note,
	})
}

type LogPhotoCmd struct {
	Path string `arg:"" help:"Path to the photo file."`
	Note string `help:"Optional note."`
}

func (c *LogPhotoCmd) Run(ctx *Context) error {
	return appendLog(ctx, models.Log{
		Kind:      models.LogPhoto,
		PhotoPath: storage.ExpandPath(c.Path),
		Note:      c.Note,
	})
}

type LogReportCmd struct {
	Mood int    `help:"Mood rating, 1-5." default:"3"`
	Note string `help:"Report text."`
}

func (c *LogReportCmd) Run(ctx *Context) error {
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5")
	}
	return appendLog(ctx, models.Log{
		Kind: models.LogReport,
		Mood: c.Mood,
		Note: c.Note,
	})
}

// appendLog persists the completion, stamps scope ownership from the item,
// and runs a badge evaluation over the updated log set.
func appendLog(ctx *Context, l models.Log) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	l.ID = uuid.New().String()
	l.CompletedAt = time.Now()

	if l.ItemID != "" {
		item, err := ctx.Store.GetItem(l.ItemID)
		if err != nil {
			return err
		}
		l.RoutineID = item.RoutineID
		l.GoalID = item.GoalID
	}

	if err := l.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddLog(l); err != nil {
		return err
	}

	fmt.Printf("Logged %s at %s\n", l.Kind, l.CompletedAt.Format("15:04"))

	earned, err := ctx.Badges.Evaluate()
	if err != nil {
		return err
	}
	for _, key := range earned {
		if def, ok := badges.Find(key); ok {
			fmt.Printf("  Badge earned: %s %s (+%d XP)\n", def.Icon, def.Name, def.XP)
			if err := ctx.Badges.MarkToastShown(key); err != nil {
				return err
			}
		}
	}
	return nil
}

type LogListCmd struct {
	Day string `help:"Day to list (YYYY-MM-DD). Defaults to today."`
}

func (c *LogListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := c.Day
	if day == "" {
		day = utils.Today(time.Now())
	}
	if _, err := utils.ParseDate(day); err != nil {
		return err
	}

	logs, err := ctx.Store.GetLogsForDay(day)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Printf("No logs for %s.\n", day)
		return nil
	}

	for _, l := range logs {
		detail := l.Note
		switch l.Kind {
		case models.LogPhoto:
			detail = l.PhotoPath
		case models.LogExercise:
			if l.DurationMin > 0 {
				detail = fmt.Sprintf("%d min  %s", l.DurationMin, l.Note)
			}
		case models.LogReport:
			detail = fmt.Sprintf("mood %d/5  %s", l.Mood, l.Note)
		}
		fmt.Printf("%s  %-8s %s\n", l.CompletedAt.Format("15:04"), l.Kind, detail)
	}
	return nil
}
