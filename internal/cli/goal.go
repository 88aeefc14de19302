package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/vigor/internal/models"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a new goal."`
	List   GoalListCmd   `cmd:"" help:"List goals."`
	Show   GoalShowCmd   `cmd:"" help:"Show a goal's activities."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Name string `arg:"" help:"Goal name."`
	Area string `help:"Focus area." default:""`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal := models.Goal{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Area:      c.Area,
		CreatedAt: time.Now(),
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (%s)\n", goal.Name, goal.ID)
	return nil
}

type GoalListCmd struct {
	Deleted bool `help:"Include deleted goals."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goals, err := ctx.Store.GetAllGoals(c.Deleted)
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	for _, g := range goals {
		status := ""
		if g.DeletedAt != nil {
			status = " [DELETED]"
		}
		fmt.Printf("%s  %s%s\n", g.ID, g.Name, status)
	}
	return nil
}

type GoalShowCmd struct {
	ID string `arg:"" help:"Goal id."`
}

func (c *GoalShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal, err := ctx.Store.GetGoal(c.ID)
	if err != nil {
		return err
	}

	joined, err := ctx.Resolver().ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", goal.Name, goal.Area)
	if len(joined) == 0 {
		fmt.Println("  no activities")
		return nil
	}

	for _, j := range joined {
		marker := ""
		if j.Orphaned {
			marker = " [no longer in catalog]"
		}
		fmt.Printf("  %s  %s  %s%s\n", j.Item.ID, j.Item.Name, FormatRecurrence(j.Item.Recurrence), marker)
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal id."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteGoal(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted goal. Past logs are kept.")
	return nil
}
