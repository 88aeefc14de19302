package models

import "time"

type BadgeLevel string

const (
	BadgeBronze   BadgeLevel = "bronze"
	BadgeSilver   BadgeLevel = "silver"
	BadgeGold     BadgeLevel = "gold"
	BadgePlatinum BadgeLevel = "platinum"
)

// Badge is a static catalog entry. The earned/not-earned state lives in
// BadgeStatus, keyed by Key.
type Badge struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Level       BadgeLevel `json:"level"`
	Icon        string     `json:"icon"`
	XP          int        `json:"xp"`
}

// BadgeStatus is the per-user state of a badge. Earned only ever transitions
// false -> true. ToastShown records whether the award has been surfaced to
// the user, so the toast appears exactly once across restarts.
type BadgeStatus struct {
	Key        string     `json:"key"`
	Earned     bool       `json:"earned"`
	EarnedAt   *time.Time `json:"earned_at,omitempty"`
	ToastShown bool       `json:"toast_shown"`
}
