package models

import (
	"fmt"
	"time"
)

// Routine bundles recurring exercise/task items.
type Routine struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Area      string     `json:"area,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (r *Routine) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("routine name cannot be empty")
	}
	return nil
}

// Goal bundles recurring activities.
type Goal struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Area      string     `json:"area,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	return nil
}
