// Package badges evaluates the badge/XP award table against accumulated
// logs and streak state.
package badges

import (
	"sync"
	"time"

	"github.com/julianstephens/vigor/internal/logger"
	"github.com/julianstephens/vigor/internal/models"
	"github.com/julianstephens/vigor/internal/streak"
)

// Store is the persistence surface the engine needs. The engine reads the
// latest persisted log set on every evaluation, never a cached snapshot.
type Store interface {
	GetAllLogs() ([]models.Log, error)
	CountLogs(kind models.LogKind) (int, error)
	GetBadgeStatus(key string) (models.BadgeStatus, error)
	GetAllBadgeStatuses() ([]models.BadgeStatus, error)
	SaveBadgeStatus(models.BadgeStatus) error
	AddXP(delta int) error
}

// Engine awards badges and XP. Construct one per user session and share it;
// evaluations are serialized internally, so a completion logged immediately
// before Evaluate is always visible to it.
type Engine struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Evaluate checks every badge condition in table order and awards each
// newly-qualifying badge exactly once: persisted status is consulted before
// any award, and an earned badge is never re-evaluated into a second award.
// Returns the keys of badges earned by this call, in table order.
func (e *Engine) Evaluate() ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Kind totals come from the store's counters; the full log set is only
	// needed for the streak computation.
	var counts Counts
	for _, kc := range []struct {
		kind models.LogKind
		dst  *int
	}{
		{models.LogExercise, &counts.Exercises},
		{models.LogTask, &counts.Tasks},
		{models.LogPhoto, &counts.Photos},
		{models.LogReport, &counts.Reports},
	} {
		n, err := e.store.CountLogs(kc.kind)
		if err != nil {
			return nil, err
		}
		*kc.dst = n
	}

	logs, err := e.store.GetAllLogs()
	if err != nil {
		return nil, err
	}
	consistency := streak.Compute(logs, e.now())

	var earned []string
	for _, def := range Table {
		status, err := e.store.GetBadgeStatus(def.Key)
		if err != nil {
			return earned, err
		}
		if status.Earned {
			continue
		}
		if !def.Earned(counts, consistency) {
			continue
		}

		when := e.now()
		status.Earned = true
		status.EarnedAt = &when
		status.ToastShown = false
		if err := e.store.SaveBadgeStatus(status); err != nil {
			return earned, err
		}
		if err := e.store.AddXP(def.XP); err != nil {
			return earned, err
		}

		logger.Info("Badge earned", "badge", def.Key, "xp", def.XP)
		earned = append(earned, def.Key)
	}

	return earned, nil
}

// PendingToasts returns earned badges whose award has not yet been surfaced
// to the user.
func (e *Engine) PendingToasts() ([]models.Badge, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	statuses, err := e.store.GetAllBadgeStatuses()
	if err != nil {
		return nil, err
	}

	var out []models.Badge
	for _, st := range statuses {
		if !st.Earned || st.ToastShown {
			continue
		}
		if def, ok := Find(st.Key); ok {
			out = append(out, def.Badge)
		}
	}
	return out, nil
}

// MarkToastShown records that the award toast for a badge has been surfaced,
// so it appears exactly once even across process restarts.
func (e *Engine) MarkToastShown(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	status, err := e.store.GetBadgeStatus(key)
	if err != nil {
		return err
	}
	if !status.Earned || status.ToastShown {
		return nil
	}
	status.ToastShown = true
	return e.store.SaveBadgeStatus(status)
}
