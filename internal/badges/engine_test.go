package badges

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/models"
)

type fakeStore struct {
	logs     []models.Log
	counts   map[models.LogKind]int
	statuses map[string]models.BadgeStatus
	xp       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{statuses: make(map[string]models.BadgeStatus)}
}

func (f *fakeStore) GetAllLogs() ([]models.Log, error) { return f.logs, nil }

func (f *fakeStore) CountLogs(kind models.LogKind) (int, error) {
	if f.counts != nil {
		return f.counts[kind], nil
	}
	n := 0
	for _, l := range f.logs {
		if l.Kind == kind {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetBadgeStatus(key string) (models.BadgeStatus, error) {
	if st, ok := f.statuses[key]; ok {
		return st, nil
	}
	return models.BadgeStatus{Key: key}, nil
}

func (f *fakeStore) GetAllBadgeStatuses() ([]models.BadgeStatus, error) {
	var out []models.BadgeStatus
	for _, st := range f.statuses {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStore) SaveBadgeStatus(st models.BadgeStatus) error {
	f.statuses[st.Key] = st
	return nil
}

func (f *fakeStore) AddXP(delta int) error {
	f.xp += delta
	return nil
}

func (f *fakeStore) addLogs(kind models.LogKind, n int, start time.Time) {
	for i := range n {
		f.logs = append(f.logs, models.Log{Kind: kind, CompletedAt: start.Add(time.Duration(i) * time.Minute)})
	}
}

func TestEvaluateFirstExercise(t *testing.T) {
	store := newFakeStore()
	store.addLogs(models.LogExercise, 1, time.Now())

	engine := NewEngine(store)
	earned, err := engine.Evaluate()
	require.NoError(t, err)

	assert.Equal(t, []string{"first_exercise"}, earned)
	assert.Equal(t, 10, store.xp)
	assert.True(t, store.statuses["first_exercise"].Earned)
	assert.NotNil(t, store.statuses["first_exercise"].EarnedAt)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addLogs(models.LogExercise, 1, time.Now())
	engine := NewEngine(store)

	earned, err := engine.Evaluate()
	require.NoError(t, err)
	require.Len(t, earned, 1)

	// Re-evaluating over unchanged state awards nothing and grants no XP.
	earned, err = engine.Evaluate()
	require.NoError(t, err)
	assert.Empty(t, earned)
	assert.Equal(t, 10, store.xp)
}

func TestEvaluateMultipleThresholdsInOneBatch(t *testing.T) {
	store := newFakeStore()
	store.addLogs(models.LogExercise, 30, time.Now().Add(-time.Hour))

	engine := NewEngine(store)
	earned, err := engine.Evaluate()
	require.NoError(t, err)

	// All crossed thresholds award together, in table order. The single day
	// of logs also crosses no streak threshold.
	assert.Equal(t, []string{"first_exercise", "exercise_10", "exercise_30"}, earned)
	assert.Equal(t, 10+25+50, store.xp)
}

func TestEvaluateCountsComeFromStoreCounters(t *testing.T) {
	store := newFakeStore()
	store.counts = map[models.LogKind]int{models.LogExercise: 10}

	engine := NewEngine(store)
	earned, err := engine.Evaluate()
	require.NoError(t, err)

	// The store holds no log rows here, so count thresholds can only be
	// crossed through the counter queries.
	assert.Equal(t, []string{"first_exercise", "exercise_10"}, earned)
}

func TestEvaluateStreakBadge(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	for i := range 3 {
		store.addLogs(models.LogTask, 1, now.AddDate(0, 0, -i))
	}

	engine := NewEngine(store)
	earned, err := engine.Evaluate()
	require.NoError(t, err)

	assert.Contains(t, earned, "streak_3")
	assert.Contains(t, earned, "first_task")
}

func TestEvaluatePlatinumRequiresBothCounts(t *testing.T) {
	store := newFakeStore()
	store.addLogs(models.LogExercise, 200, time.Now().Add(-time.Hour))

	engine := NewEngine(store)
	earned, err := engine.Evaluate()
	require.NoError(t, err)
	assert.NotContains(t, earned, "iron_will")

	store.addLogs(models.LogPhoto, 200, time.Now().Add(-time.Hour))
	earned, err = engine.Evaluate()
	require.NoError(t, err)
	assert.Contains(t, earned, "iron_will")
}

func TestToastShownExactlyOnce(t *testing.T) {
	store := newFakeStore()
	store.addLogs(models.LogPhoto, 1, time.Now())
	engine := NewEngine(store)

	_, err := engine.Evaluate()
	require.NoError(t, err)

	pending, err := engine.PendingToasts()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "first_photo", pending[0].Key)

	require.NoError(t, engine.MarkToastShown("first_photo"))

	pending, err = engine.PendingToasts()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFindCoversWholeTable(t *testing.T) {
	for _, def := range Table {
		found, ok := Find(def.Key)
		require.True(t, ok)
		assert.Equal(t, def.Name, found.Name)
		assert.Positive(t, def.XP)
	}

	_, ok := Find("no_such_badge")
	assert.False(t, ok)
}
