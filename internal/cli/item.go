package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
)

type ItemCmd struct {
	Add    ItemAddCmd    `cmd:"" help:"Add an item to a routine or goal."`
	List   ItemListCmd   `cmd:"" help:"List all items."`
	Edit   ItemEditCmd   `cmd:"" help:"Edit an item's overrides or schedule."`
	Remove ItemRemoveCmd `cmd:"" help:"Remove an item. Past logs are kept."`
}

type ItemAddCmd struct {
	Routine      string `help:"Routine to attach the item to." xor:"scope" required:""`
	Goal         string `help:"Goal to attach the item to." xor:"scope"`
	Template     string `help:"Catalog template id (e.g. ex-pushup)."`
	Name         string `help:"Item name. Defaults to the template's name."`
	Type         string `help:"Item type (task, exercise, activity). Defaults to the template's type."`
	Area         string `help:"Focus area override."`
	Instructions string `help:"Instructions override."`
	Schedule     string `help:"Schedule, e.g. '07:00,18:30' or 'wed@07:00' or 'random'. Empty means backlog."`
}

func (c *ItemAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rec, err := ParseSchedule(c.Schedule)
	if err != nil {
		return err
	}

	item := models.Item{
		ID:           uuid.New().String(),
		TemplateID:   c.Template,
		RoutineID:    c.Routine,
		GoalID:       c.Goal,
		Type:         constants.ItemType(c.Type),
		Name:         c.Name,
		Area:         c.Area,
		Instructions: c.Instructions,
		Recurrence:   rec,
		CreatedAt:    time.Now(),
	}

	if c.Template != "" {
		tpl, ok := ctx.Catalog.Lookup(c.Template)
		if !ok {
			return fmt.Errorf("unknown catalog template: %s", c.Template)
		}
		if item.Type == "" {
			item.Type = tpl.Type
		}
	}
	if item.Type == "" {
		item.Type = constants.ItemTask
	}

	// Verify the owning scope exists before persisting.
	if c.Routine != "" {
		if _, err := ctx.Store.GetRoutine(c.Routine); err != nil {
			return err
		}
	} else if c.Goal != "" {
		if _, err := ctx.Store.GetGoal(c.Goal); err != nil {
			return err
		}
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddItem(item); err != nil {
		return err
	}

	name := item.Name
	if name == "" {
		tpl, _ := ctx.Catalog.Lookup(item.TemplateID)
		name = tpl.Name
	}
	fmt.Printf("Added item: %s (%s), %s\n", name, item.ID, FormatRecurrence(item.Recurrence))
	return nil
}

type ItemListCmd struct{}

func (c *ItemListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	for _, item := range items {
		name := item.Name
		if name == "" {
			if tpl, ok := ctx.Catalog.Lookup(item.TemplateID); ok {
				name = tpl.Name
			} else {
				name = item.TemplateID + " [no longer in catalog]"
			}
		}
		fmt.Printf("%s  %-10s %-30s %s\n", item.ID, item.Type, name, FormatRecurrence(item.Recurrence))
	}
	return nil
}

type ItemEditCmd struct {
	ID           string `arg:"" help:"Item id."`
	Name         string `help:"New name override."`
	Area         string `help:"New focus area override."`
	Instructions string `help:"New instructions override."`
	Schedule     string `help:"New schedule. Pass 'none' to clear."`
}

func (c *ItemEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	item, err := ctx.Store.GetItem(c.ID)
	if err != nil {
		return err
	}

	if c.Name != "" {
		item.Name = c.Name
	}
	if c.Area != "" {
		item.Area = c.Area
	}
	if c.Instructions != "" {
		item.Instructions = c.Instructions
	}
	if c.Schedule != "" {
		if c.Schedule == "none" {
			item.Recurrence = models.Recurrence{}
		} else {
			rec, err := ParseSchedule(c.Schedule)
			if err != nil {
				return err
			}
			item.Recurrence = rec
		}
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateItem(item); err != nil {
		return err
	}

	fmt.Printf("Updated item %s, %s\n", item.ID, FormatRecurrence(item.Recurrence))
	return nil
}

type ItemRemoveCmd struct {
	ID string `arg:"" help:"Item id."`
}

func (c *ItemRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteItem(c.ID); err != nil {
		return err
	}
	fmt.Println("Removed item. Past logs are kept.")
	return nil
}
