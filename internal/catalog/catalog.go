// Package catalog holds the static, user-independent templates for
// exercises, tasks, and activities, plus the join that resolves a user's
// item references against them.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/vigor/internal/constants"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Template is a static catalog definition. Templates are read-only; user
// customization lives on the item, not here.
type Template struct {
	ID           string             `yaml:"id"`
	Type         constants.ItemType `yaml:"-"`
	Name         string             `yaml:"name"`
	Area         string             `yaml:"area"`
	Instructions string             `yaml:"instructions"`
	Media        string             `yaml:"media"`
}

type Catalog struct {
	byID map[string]Template
}

var catalogFiles = map[string]constants.ItemType{
	"data/exercises.yaml":  constants.ItemExercise,
	"data/tasks.yaml":      constants.ItemTask,
	"data/activities.yaml": constants.ItemActivity,
}

// Load parses the embedded template files into an in-memory lookup table.
func Load() (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Template)}

	for file, itemType := range catalogFiles {
		data, err := dataFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", file, err)
		}

		var templates []Template
		if err := yaml.Unmarshal(data, &templates); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", file, err)
		}

		for _, t := range templates {
			if t.ID == "" {
				return nil, fmt.Errorf("catalog file %s contains a template without an id", file)
			}
			if _, exists := c.byID[t.ID]; exists {
				return nil, fmt.Errorf("duplicate catalog template id %q", t.ID)
			}
			t.Type = itemType
			c.byID[t.ID] = t
		}
	}

	return c, nil
}

// Lookup returns the template for the given id. The second return is false
// when the template no longer exists in the catalog; callers must handle
// that case, since items and logs may outlive their templates.
func (c *Catalog) Lookup(id string) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of loaded templates.
func (c *Catalog) Len() int {
	return len(c.byID)
}
