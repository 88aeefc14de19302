package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

// AddLog appends a completion record. Logs are never updated or deleted; the
// completed_day column is derived once here so day-bucket queries never do
// timezone math in SQL.
func (s *Store) AddLog(l models.Log) error {
	_, err := s.db.Exec(`
		INSERT INTO logs (id, kind, item_id, routine_id, goal_id, completed_at, completed_day, note, photo_path, duration_min, mood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, string(l.Kind), l.ItemID, l.RoutineID, l.GoalID,
		l.CompletedAt.Format(time.RFC3339), l.CompletedAt.Format(constants.DateFormat),
		l.Note, l.PhotoPath, l.DurationMin, l.Mood)
	if err != nil {
		return vigorerrors.NewPersistence("add log", err)
	}
	return nil
}

func (s *Store) GetLogsForItem(itemID string) ([]models.Log, error) {
	return s.queryLogs(logSelect+" WHERE item_id = ? ORDER BY completed_at", itemID)
}

func (s *Store) GetLogsForDay(day string) ([]models.Log, error) {
	return s.queryLogs(logSelect+" WHERE completed_day = ? ORDER BY completed_at", day)
}

func (s *Store) GetLogsForRoutine(routineID string) ([]models.Log, error) {
	return s.queryLogs(logSelect+" WHERE routine_id = ? ORDER BY completed_at", routineID)
}

func (s *Store) GetLogsForGoal(goalID string) ([]models.Log, error) {
	return s.queryLogs(logSelect+" WHERE goal_id = ? ORDER BY completed_at", goalID)
}

func (s *Store) GetAllLogs() ([]models.Log, error) {
	return s.queryLogs(logSelect + " ORDER BY completed_at")
}

func (s *Store) CountLogs(kind models.LogKind) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT count(*) FROM logs WHERE kind = ?", string(kind)).Scan(&count)
	if err != nil {
		return 0, vigorerrors.NewPersistence("count logs", err)
	}
	return count, nil
}

const logSelect = `
	SELECT id, kind, item_id, routine_id, goal_id, completed_at, note, photo_path, duration_min, mood
	FROM logs`

func (s *Store) queryLogs(query string, args ...any) ([]models.Log, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, vigorerrors.NewPersistence("list logs", err)
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, vigorerrors.NewPersistence("list logs", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func scanLog(row rowScanner) (models.Log, error) {
	var l models.Log
	var kind, completedAt string
	var itemID, routineID, goalID, note, photoPath sql.NullString

	err := row.Scan(&l.ID, &kind, &itemID, &routineID, &goalID, &completedAt,
		&note, &photoPath, &l.DurationMin, &l.Mood)
	if err != nil {
		return models.Log{}, err
	}

	l.Kind = models.LogKind(kind)
	l.ItemID = itemID.String
	l.RoutineID = routineID.String
	l.GoalID = goalID.String
	l.Note = note.String
	l.PhotoPath = photoPath.String

	l.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return models.Log{}, fmt.Errorf("failed to parse completed_at: %w", err)
	}
	// Timestamps are stored with their offset; bucket comparisons happen on
	// the local calendar date.
	l.CompletedAt = l.CompletedAt.Local()
	return l, nil
}
