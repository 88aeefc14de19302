package storage

import "github.com/julianstephens/vigor/internal/models"

// Provider is the persistence contract for the engine. There is exactly one
// writer (the single local user), so no optimistic concurrency control.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Routines
	AddRoutine(models.Routine) error
	GetRoutine(id string) (models.Routine, error)
	GetAllRoutines(includeDeleted bool) ([]models.Routine, error)
	DeleteRoutine(id string) error

	// Goals
	AddGoal(models.Goal) error
	GetGoal(id string) (models.Goal, error)
	GetAllGoals(includeDeleted bool) ([]models.Goal, error)
	DeleteGoal(id string) error

	// Items
	AddItem(models.Item) error
	GetItem(id string) (models.Item, error)
	GetItemsForRoutine(routineID string) ([]models.Item, error)
	GetItemsForGoal(goalID string) ([]models.Item, error)
	GetAllItems() ([]models.Item, error)
	UpdateItem(models.Item) error
	DeleteItem(id string) error

	// Logs (append-only)
	AddLog(models.Log) error
	GetLogsForItem(itemID string) ([]models.Log, error)
	GetLogsForDay(day string) ([]models.Log, error)
	GetLogsForRoutine(routineID string) ([]models.Log, error)
	GetLogsForGoal(goalID string) ([]models.Log, error)
	GetAllLogs() ([]models.Log, error)
	CountLogs(kind models.LogKind) (int, error)

	// Badges / XP
	GetBadgeStatus(key string) (models.BadgeStatus, error)
	GetAllBadgeStatuses() ([]models.BadgeStatus, error)
	SaveBadgeStatus(models.BadgeStatus) error
	GetXP() (int, error)
	AddXP(delta int) error

	// Onboarding
	GetOnboarding(flowKey string) (models.Onboarding, error)
	SaveOnboarding(models.Onboarding) error

	// Utils
	GetConfigPath() string
}
