package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

func (s *Store) AddRoutine(r models.Routine) error {
	_, err := s.db.Exec(`
		INSERT INTO routines (id, name, area, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, NULL)`,
		r.ID, r.Name, r.Area, r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return vigorerrors.NewPersistence("add routine", err)
	}
	return nil
}

func (s *Store) GetRoutine(id string) (models.Routine, error) {
	row := s.db.QueryRow(`
		SELECT id, name, area, created_at, deleted_at
		FROM routines WHERE id = $1 AND deleted_at IS NULL`, id)

	r, err := scanRoutine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Routine{}, vigorerrors.NewNotFound("routine", id)
		}
		return models.Routine{}, vigorerrors.NewPersistence("get routine", err)
	}
	return r, nil
}

func (s *Store) GetAllRoutines(includeDeleted bool) ([]models.Routine, error) {
	query := "SELECT id, name, area, created_at, deleted_at FROM routines"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, vigorerrors.NewPersistence("list routines", err)
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, vigorerrors.NewPersistence("list routines", err)
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

func (s *Store) DeleteRoutine(id string) error {
	res, err := s.db.Exec(`
		UPDATE routines SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return vigorerrors.NewPersistence("delete routine", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vigorerrors.NewNotFound("routine", id)
	}
	return nil
}

func (s *Store) AddGoal(g models.Goal) error {
	_, err := s.db.Exec(`
		INSERT INTO goals (id, name, area, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, NULL)`,
		g.ID, g.Name, g.Area, g.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return vigorerrors.NewPersistence("add goal", err)
	}
	return nil
}

func (s *Store) GetGoal(id string) (models.Goal, error) {
	row := s.db.QueryRow(`
		SELECT id, name, area, created_at, deleted_at
		FROM goals WHERE id = $1 AND deleted_at IS NULL`, id)

	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, vigorerrors.NewNotFound("goal", id)
		}
		return models.Goal{}, vigorerrors.NewPersistence("get goal", err)
	}
	return g, nil
}

func (s *Store) GetAllGoals(includeDeleted bool) ([]models.Goal, error) {
	query := "SELECT id, name, area, created_at, deleted_at FROM goals"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, vigorerrors.NewPersistence("list goals", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, vigorerrors.NewPersistence("list goals", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec(`
		UPDATE goals SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return vigorerrors.NewPersistence("delete goal", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vigorerrors.NewNotFound("goal", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (models.Routine, error) {
	var r models.Routine
	var createdAt string
	var area, deletedAt sql.NullString

	if err := row.Scan(&r.ID, &r.Name, &area, &createdAt, &deletedAt); err != nil {
		return models.Routine{}, err
	}

	r.Area = area.String
	var err error
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Routine{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
			r.DeletedAt = &t
		}
	}
	return r, nil
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	var createdAt string
	var area, deletedAt sql.NullString

	if err := row.Scan(&g.ID, &g.Name, &area, &createdAt, &deletedAt); err != nil {
		return models.Goal{}, err
	}

	g.Area = area.String
	var err error
	g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
			g.DeletedAt = &t
		}
	}
	return g, nil
}
