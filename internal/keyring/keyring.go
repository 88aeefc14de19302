package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/vigor/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is found in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

const (
	connStringKey    = constants.DefaultKeyringUser
	webhookSecretKey = "vigor-tray-secret"
)

// GetConnectionString retrieves the database connection string from the OS
// keyring. Returns ErrNotFound if none is stored.
func GetConnectionString() (string, error) {
	return get(connStringKey)
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	return set(connStringKey, connStr)
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	return del(connStringKey)
}

// GetWebhookSecret retrieves the tray webhook secret from the OS keyring.
func GetWebhookSecret() (string, error) {
	return get(webhookSecretKey)
}

// SetWebhookSecret stores the tray webhook secret in the OS keyring.
func SetWebhookSecret(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	return set(webhookSecretKey, secret)
}

func get(user string) (string, error) {
	v, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func set(user, value string) error {
	if err := keyring.Set(constants.AppName, user, value); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	err := keyring.Delete(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}
