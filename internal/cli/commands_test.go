package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/badges"
	"github.com/julianstephens/vigor/internal/catalog"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/storage"
)

// newTestContext initializes a database in a temp dir and hands back a
// context whose provider has not been opened yet, matching what main builds
// for every invocation.
func newTestContext(t *testing.T) *Context {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vigor.db")
	setup := storage.NewSQLiteStore(path)
	require.NoError(t, setup.Init())
	require.NoError(t, setup.Close())

	store := storage.NewSQLiteStore(path)
	t.Cleanup(func() { _ = store.Close() })

	cat, err := catalog.Load()
	require.NoError(t, err)

	return &Context{Store: store, Catalog: cat, Badges: badges.NewEngine(store)}
}

func TestCommandsOpenStorageOnDemand(t *testing.T) {
	cases := []struct {
		name string
		run  func(*Context) error
	}{
		{"today", func(c *Context) error { return (&TodayCmd{}).Run(c) }},
		{"stats", func(c *Context) error { return (&StatsCmd{}).Run(c) }},
		{"badges", func(c *Context) error { return (&BadgesCmd{}).Run(c) }},
		{"log list", func(c *Context) error { return (&LogListCmd{}).Run(c) }},
		{"routine list", func(c *Context) error { return (&RoutineListCmd{}).Run(c) }},
		{"routine add", func(c *Context) error { return (&RoutineAddCmd{Name: "Morning"}).Run(c) }},
		{"goal list", func(c *Context) error { return (&GoalListCmd{}).Run(c) }},
		{"item list", func(c *Context) error { return (&ItemListCmd{}).Run(c) }},
		{"onboard status", func(c *Context) error { return (&OnboardStatusCmd{}).Run(c) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Each command gets a provider nothing has opened, so it must
			// open storage itself rather than rely on a prior command.
			ctx := newTestContext(t)
			assert.NoError(t, tc.run(ctx))
		})
	}
}

func TestLogPhotoRecordsExpandedPath(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, (&LogPhotoCmd{Path: "/tmp/progress/front.jpg"}).Run(ctx))
	require.NoError(t, (&LogPhotoCmd{Path: "~/progress/side.jpg"}).Run(ctx))

	logs, err := ctx.Store.GetAllLogs()
	require.NoError(t, err)
	require.Len(t, logs, 2)

	paths := make(map[string]bool)
	for _, l := range logs {
		assert.Equal(t, models.LogPhoto, l.Kind)
		assert.False(t, strings.HasPrefix(l.PhotoPath, "~"), "path %q was not expanded", l.PhotoPath)
		paths[l.PhotoPath] = true
	}
	assert.True(t, paths["/tmp/progress/front.jpg"])
}

func TestInitGuardsExistingStorage(t *testing.T) {
	ctx := newTestContext(t)

	err := (&InitCmd{}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, (&InitCmd{Force: true}).Run(ctx))
}
