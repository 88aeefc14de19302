package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/logger"
	"github.com/julianstephens/vigor/internal/models"
)

func (s *Store) AddItem(item models.Item) error {
	schedules, err := json.Marshal(item.Recurrence)
	if err != nil {
		return fmt.Errorf("failed to encode schedules: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO items (id, template_id, routine_id, goal_id, type, name, area, instructions, schedules, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		item.ID, item.TemplateID, item.RoutineID, item.GoalID, string(item.Type),
		item.Name, item.Area, item.Instructions, string(schedules),
		item.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return vigorerrors.NewPersistence("add item", err)
	}
	return nil
}

func (s *Store) GetItem(id string) (models.Item, error) {
	row := s.db.QueryRow(itemSelect+" WHERE id = ? AND deleted_at IS NULL", id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, vigorerrors.NewNotFound("item", id)
		}
		return models.Item{}, vigorerrors.NewPersistence("get item", err)
	}
	return item, nil
}

func (s *Store) GetItemsForRoutine(routineID string) ([]models.Item, error) {
	return s.queryItems(itemSelect+" WHERE routine_id = ? AND deleted_at IS NULL ORDER BY created_at", routineID)
}

func (s *Store) GetItemsForGoal(goalID string) ([]models.Item, error) {
	return s.queryItems(itemSelect+" WHERE goal_id = ? AND deleted_at IS NULL ORDER BY created_at", goalID)
}

func (s *Store) GetAllItems() ([]models.Item, error) {
	return s.queryItems(itemSelect + " WHERE deleted_at IS NULL ORDER BY created_at")
}

func (s *Store) UpdateItem(item models.Item) error {
	schedules, err := json.Marshal(item.Recurrence)
	if err != nil {
		return fmt.Errorf("failed to encode schedules: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE items SET name = ?, area = ?, instructions = ?, schedules = ?
		WHERE id = ? AND deleted_at IS NULL`,
		item.Name, item.Area, item.Instructions, string(schedules), item.ID)
	if err != nil {
		return vigorerrors.NewPersistence("update item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vigorerrors.NewNotFound("item", item.ID)
	}
	return nil
}

// DeleteItem soft-deletes an item. Its logs are kept: deletion never removes
// history, and logs may reference an id with no surviving item row.
func (s *Store) DeleteItem(id string) error {
	res, err := s.db.Exec(`
		UPDATE items SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return vigorerrors.NewPersistence("delete item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vigorerrors.NewNotFound("item", id)
	}
	return nil
}

const itemSelect = `
	SELECT id, template_id, routine_id, goal_id, type, name, area, instructions, schedules, created_at, deleted_at
	FROM items`

func (s *Store) queryItems(query string, args ...any) ([]models.Item, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, vigorerrors.NewPersistence("list items", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, vigorerrors.NewPersistence("list items", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	var itemType, createdAt string
	var templateID, routineID, goalID, name, area, instructions, schedules, deletedAt sql.NullString

	err := row.Scan(&item.ID, &templateID, &routineID, &goalID, &itemType,
		&name, &area, &instructions, &schedules, &createdAt, &deletedAt)
	if err != nil {
		return models.Item{}, err
	}

	item.TemplateID = templateID.String
	item.RoutineID = routineID.String
	item.GoalID = goalID.String
	item.Type = constants.ItemType(itemType)
	item.Name = name.String
	item.Area = area.String
	item.Instructions = instructions.String

	// A corrupted schedules column degrades to an unscheduled item rather
	// than failing the whole read.
	if schedules.Valid && schedules.String != "" {
		if err := json.Unmarshal([]byte(schedules.String), &item.Recurrence); err != nil {
			logger.Warn("Discarding malformed schedule data", "item", item.ID, "error", err)
			item.Recurrence = models.Recurrence{}
		}
	}

	item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
			item.DeletedAt = &t
		}
	}
	return item, nil
}
