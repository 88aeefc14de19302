package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
)

// Item is a schedulable unit attached to a routine or goal: a catalog
// template reference plus the user's per-instance overrides. Deleting an item
// never deletes its logs; logs keep a dangling reference by id.
type Item struct {
	ID           string             `json:"id"`
	TemplateID   string             `json:"template_id,omitempty"`
	RoutineID    string             `json:"routine_id,omitempty"`
	GoalID       string             `json:"goal_id,omitempty"`
	Type         constants.ItemType `json:"type"`
	Name         string             `json:"name"`
	Area         string             `json:"area,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
	Recurrence   Recurrence         `json:"recurrence"`
	CreatedAt    time.Time          `json:"created_at"`
	DeletedAt    *time.Time         `json:"deleted_at,omitempty"`
}

func (i *Item) Validate() error {
	if i.Name == "" && i.TemplateID == "" {
		return fmt.Errorf("item must have a name or a template reference")
	}

	switch i.Type {
	case constants.ItemTask, constants.ItemExercise, constants.ItemActivity:
	default:
		return fmt.Errorf("invalid item type: %q", i.Type)
	}

	if i.RoutineID == "" && i.GoalID == "" {
		return fmt.Errorf("item must belong to a routine or a goal")
	}
	if i.RoutineID != "" && i.GoalID != "" {
		return fmt.Errorf("item cannot belong to both a routine and a goal")
	}

	if err := i.Recurrence.Validate(); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	return nil
}

// ScopeID returns the id of the routine or goal that owns the item.
func (i *Item) ScopeID() string {
	if i.RoutineID != "" {
		return i.RoutineID
	}
	return i.GoalID
}
