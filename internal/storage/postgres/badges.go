package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

func (s *Store) GetBadgeStatus(key string) (models.BadgeStatus, error) {
	row := s.db.QueryRow(`
		SELECT key, earned, earned_at, toast_shown FROM badge_status WHERE key = $1`, key)

	st, err := scanBadgeStatus(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BadgeStatus{Key: key}, nil
		}
		return models.BadgeStatus{}, vigorerrors.NewPersistence("get badge status", err)
	}
	return st, nil
}

func (s *Store) GetAllBadgeStatuses() ([]models.BadgeStatus, error) {
	rows, err := s.db.Query("SELECT key, earned, earned_at, toast_shown FROM badge_status")
	if err != nil {
		return nil, vigorerrors.NewPersistence("list badge statuses", err)
	}
	defer rows.Close()

	var statuses []models.BadgeStatus
	for rows.Next() {
		st, err := scanBadgeStatus(rows)
		if err != nil {
			return nil, vigorerrors.NewPersistence("list badge statuses", err)
		}
		statuses = append(statuses, st)
	}
	return statuses, rows.Err()
}

func (s *Store) SaveBadgeStatus(st models.BadgeStatus) error {
	var earnedAt any
	if st.EarnedAt != nil {
		earnedAt = st.EarnedAt.Format(time.RFC3339)
	}

	_, err := s.db.Exec(`
		INSERT INTO badge_status (key, earned, earned_at, toast_shown)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET earned = excluded.earned, earned_at = excluded.earned_at, toast_shown = excluded.toast_shown`,
		st.Key, boolToInt(st.Earned), earnedAt, boolToInt(st.ToastShown))
	if err != nil {
		return vigorerrors.NewPersistence("save badge status", err)
	}
	return nil
}

func (s *Store) GetXP() (int, error) {
	var total int
	if err := s.db.QueryRow("SELECT total FROM xp WHERE id = 1").Scan(&total); err != nil {
		return 0, vigorerrors.NewPersistence("get xp", err)
	}
	return total, nil
}

func (s *Store) AddXP(delta int) error {
	if delta < 0 {
		return fmt.Errorf("xp delta must be non-negative, got %d", delta)
	}
	if _, err := s.db.Exec("UPDATE xp SET total = total + $1 WHERE id = 1", delta); err != nil {
		return vigorerrors.NewPersistence("add xp", err)
	}
	return nil
}

func (s *Store) GetOnboarding(flowKey string) (models.Onboarding, error) {
	row := s.db.QueryRow("SELECT flow_key, step, status FROM onboarding WHERE flow_key = $1", flowKey)

	var o models.Onboarding
	var status string
	if err := row.Scan(&o.FlowKey, &o.Step, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Onboarding{FlowKey: flowKey, Status: models.OnboardingNotStarted}, nil
		}
		return models.Onboarding{}, vigorerrors.NewPersistence("get onboarding", err)
	}
	o.Status = models.OnboardingState(status)
	return o, nil
}

func (s *Store) SaveOnboarding(o models.Onboarding) error {
	_, err := s.db.Exec(`
		INSERT INTO onboarding (flow_key, step, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (flow_key) DO UPDATE SET step = excluded.step, status = excluded.status`,
		o.FlowKey, o.Step, string(o.Status))
	if err != nil {
		return vigorerrors.NewPersistence("save onboarding", err)
	}
	return nil
}

func scanBadgeStatus(row rowScanner) (models.BadgeStatus, error) {
	var st models.BadgeStatus
	var earned, toastShown int
	var earnedAt sql.NullString

	if err := row.Scan(&st.Key, &earned, &earnedAt, &toastShown); err != nil {
		return models.BadgeStatus{}, err
	}

	st.Earned = earned != 0
	st.ToastShown = toastShown != 0
	if earnedAt.Valid {
		if t, err := time.Parse(time.RFC3339, earnedAt.String); err == nil {
			st.EarnedAt = &t
		}
	}
	return st, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
