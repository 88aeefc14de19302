package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/vigor/internal/models"
)

type RoutineCmd struct {
	Add    RoutineAddCmd    `cmd:"" help:"Add a new routine."`
	List   RoutineListCmd   `cmd:"" help:"List routines."`
	Show   RoutineShowCmd   `cmd:"" help:"Show a routine's items."`
	Delete RoutineDeleteCmd `cmd:"" help:"Delete a routine."`
}

type RoutineAddCmd struct {
	Name string `arg:"" help:"Routine name."`
	Area string `help:"Focus area (e.g. strength, face)." default:""`
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routine := models.Routine{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Area:      c.Area,
		CreatedAt: time.Now(),
	}
	if err := routine.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddRoutine(routine); err != nil {
		return err
	}

	fmt.Printf("Added routine: %s (%s)\n", routine.Name, routine.ID)
	return nil
}

type RoutineListCmd struct {
	Deleted bool `help:"Include deleted routines."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routines, err := ctx.Store.GetAllRoutines(c.Deleted)
	if err != nil {
		return err
	}

	if len(routines) == 0 {
		fmt.Println("No routines found.")
		return nil
	}

	for _, r := range routines {
		status := ""
		if r.DeletedAt != nil {
			status = " [DELETED]"
		}
		fmt.Printf("%s  %s%s\n", r.ID, r.Name, status)
	}
	return nil
}

type RoutineShowCmd struct {
	ID string `arg:"" help:"Routine id."`
}

func (c *RoutineShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routine, err := ctx.Store.GetRoutine(c.ID)
	if err != nil {
		return err
	}

	joined, err := ctx.Resolver().ResolveRoutine(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", routine.Name, routine.Area)
	if len(joined) == 0 {
		fmt.Println("  no items")
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

type RoutineDeleteCmd struct {
	ID string `arg:"" help:"Routine id."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteRoutine(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted routine. Past logs are kept.")
	return nil
}
