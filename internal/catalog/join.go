package catalog

import (
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

// JoinedItem is an item merged with its catalog template. Orphaned is true
// when the template has been removed from the catalog: the item stays
// displayable and loggable using only its persisted fields.
type JoinedItem struct {
	Item     models.Item
	Template Template
	Orphaned bool
}

// Store is the subset of the persistence provider the resolver needs.
type Store interface {
	GetRoutine(id string) (models.Routine, error)
	GetGoal(id string) (models.Goal, error)
	GetItemsForRoutine(routineID string) ([]models.Item, error)
	GetItemsForGoal(goalID string) ([]models.Item, error)
}

// Resolver joins persisted item references against the static catalogs.
// It is a pure read: no resolution ever writes state.
type Resolver struct {
	store   Store
	catalog *Catalog
}

func NewResolver(store Store, catalog *Catalog) *Resolver {
	return &Resolver{store: store, catalog: catalog}
}

// ResolveRoutine resolves all items attached to a routine. A missing routine
// is a NotFoundError; a missing template is not an error, the item degrades
// to an orphan.
func (r *Resolver) ResolveRoutine(routineID string) ([]JoinedItem, error) {
	if _, err := r.store.GetRoutine(routineID); err != nil {
		return nil, err
	}

	items, err := r.store.GetItemsForRoutine(routineID)
	if err != nil {
		return nil, err
	}
	return r.join(items), nil
}

// ResolveGoal resolves all items attached to a goal.
func (r *Resolver) ResolveGoal(goalID string) ([]JoinedItem, error) {
	if _, err := r.store.GetGoal(goalID); err != nil {
		return nil, err
	}

	items, err := r.store.GetItemsForGoal(goalID)
	if err != nil {
		return nil, err
	}
	return r.join(items), nil
}

// Resolve resolves against whichever scope owns the id, trying routines
// first. Returns NotFoundError when neither scope matches.
func (r *Resolver) Resolve(scopeID string) ([]JoinedItem, error) {
	joined, err := r.ResolveRoutine(scopeID)
	if err == nil {
		return joined, nil
	}
	if !vigorerrors.IsNotFound(err) {
		return nil, err
	}

	joined, err = r.ResolveGoal(scopeID)
	if err == nil {
		return joined, nil
	}
	if vigorerrors.IsNotFound(err) {
		return nil, vigorerrors.NewNotFound("routine or goal", scopeID)
	}
	return nil, err
}

func (r *Resolver) join(items []models.Item) []JoinedItem {
	joined := make([]JoinedItem, 0, len(items))
	for _, item := range items {
		if item.TemplateID == "" {
			joined = append(joined, JoinedItem{Item: item})
			continue
		}
		tmpl, ok := r.catalog.Lookup(item.TemplateID)
		if !ok {
			joined = append(joined, JoinedItem{Item: item, Orphaned: true})
			continue
		}
		joined = append(joined, JoinedItem{Item: merge(item, tmpl), Template: tmpl})
	}
	return joined
}

// merge fills item fields from the template. Persisted overrides win on
// conflict; the template only supplies what the user left unset.
func merge(item models.Item, tmpl Template) models.Item {
	if item.Name == "" {
		item.Name = tmpl.Name
	}
	if item.Area == "" {
		item.Area = tmpl.Area
	}
	if item.Instructions == "" {
		item.Instructions = tmpl.Instructions
	}
	if item.Type == "" {
		item.Type = tmpl.Type
	}
	return item
}
