package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

type fakeStore struct {
	routines map[string]models.Routine
	goals    map[string]models.Goal
	items    map[string][]models.Item
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		routines: make(map[string]models.Routine),
		goals:    make(map[string]models.Goal),
		items:    make(map[string][]models.Item),
	}
}

func (f *fakeStore) GetRoutine(id string) (models.Routine, error) {
	if r, ok := f.routines[id]; ok {
		return r, nil
	}
	return models.Routine{}, vigorerrors.NewNotFound("routine", id)
}

func (f *fakeStore) GetGoal(id string) (models.Goal, error) {
	if g, ok := f.goals[id]; ok {
		return g, nil
	}
	return models.Goal{}, vigorerrors.NewNotFound("goal", id)
}

func (f *fakeStore) GetItemsForRoutine(routineID string) ([]models.Item, error) {
	return f.items[routineID], nil
}

func (f *fakeStore) GetItemsForGoal(goalID string) ([]models.Item, error) {
	return f.items[goalID], nil
}

func TestResolveRoutineMergesTemplates(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	store := newFakeStore()
	store.routines["rt-1"] = models.Routine{ID: "rt-1", Name: "Morning"}
	store.items["rt-1"] = []models.Item{
		{ID: "it-1", TemplateID: "ex-pushups", RoutineID: "rt-1"},
	}

	joined, err := NewResolver(store, cat).ResolveRoutine("rt-1")
	require.NoError(t, err)
	require.Len(t, joined, 1)

	j := joined[0]
	assert.False(t, j.Orphaned)
	assert.Equal(t, constants.ItemExercise, j.Item.Type)
	assert.NotEmpty(t, j.Item.Name)
	assert.NotEmpty(t, j.Item.Instructions)
	assert.Equal(t, j.Template.Name, j.Item.Name)
}

func TestResolveOverridesWin(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	store := newFakeStore()
	store.routines["rt-1"] = models.Routine{ID: "rt-1", Name: "Morning"}
	store.items["rt-1"] = []models.Item{
		{ID: "it-1", TemplateID: "ex-pushups", RoutineID: "rt-1", Name: "My pushups", Area: "custom"},
	}

	joined, err := NewResolver(store, cat).ResolveRoutine("rt-1")
	require.NoError(t, err)
	require.Len(t, joined, 1)

	// Persisted overrides beat template values; blanks still fill in.
	assert.Equal(t, "My pushups", joined[0].Item.Name)
	assert.Equal(t, "custom", joined[0].Item.Area)
	assert.NotEmpty(t, joined[0].Item.Instructions)
}

func TestResolveOrphanedTemplate(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	store := newFakeStore()
	store.goals["gl-1"] = models.Goal{ID: "gl-1", Name: "Get fit"}
	store.items["gl-1"] = []models.Item{
		{ID: "it-1", TemplateID: "ex-retired", GoalID: "gl-1", Name: "Old exercise"},
	}

	joined, err := NewResolver(store, cat).ResolveGoal("gl-1")
	require.NoError(t, err)
	require.Len(t, joined, 1)

	// The item degrades gracefully instead of erroring.
	assert.True(t, joined[0].Orphaned)
	assert.Equal(t, "Old exercise", joined[0].Item.Name)
}

func TestResolveCustomItemWithoutTemplate(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	store := newFakeStore()
	store.routines["rt-1"] = models.Routine{ID: "rt-1", Name: "Morning"}
	store.items["rt-1"] = []models.Item{
		{ID: "it-1", RoutineID: "rt-1", Name: "Custom thing", Type: constants.ItemTask},
	}

	joined, err := NewResolver(store, cat).ResolveRoutine("rt-1")
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.False(t, joined[0].Orphaned)
	assert.Equal(t, "Custom thing", joined[0].Item.Name)
}

func TestResolveMissingScope(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	resolver := NewResolver(newFakeStore(), cat)

	_, err = resolver.ResolveRoutine("rt-missing")
	assert.True(t, vigorerrors.IsNotFound(err))

	_, err = resolver.Resolve("nothing")
	assert.True(t, vigorerrors.IsNotFound(err))
}

func TestResolveTriesRoutineThenGoal(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	store := newFakeStore()
	store.goals["gl-1"] = models.Goal{ID: "gl-1", Name: "Get fit"}
	store.items["gl-1"] = []models.Item{
		{ID: "it-1", TemplateID: "act-walk", GoalID: "gl-1"},
	}

	joined, err := NewResolver(store, cat).Resolve("gl-1")
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, constants.ItemActivity, joined[0].Item.Type)
}

func TestLoadCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Positive(t, cat.Len())

	tpl, ok := cat.Lookup("task-water")
	require.True(t, ok)
	assert.Equal(t, constants.ItemTask, tpl.Type)
	assert.NotEmpty(t, tpl.Name)

	_, ok = cat.Lookup("nope")
	assert.False(t, ok)
}
