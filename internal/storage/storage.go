package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/vigor/internal/storage/postgres"
	"github.com/julianstephens/vigor/internal/storage/sqlite"
)

// NewSQLiteStore creates the default local sqlite-backed store. A leading ~
// in the path expands to the user's home directory.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandPath(path))
}

// NewPostgresStore creates a postgres-backed store from a connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgres reports whether the config value names a postgres backend.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a postgres connection string embeds
// a password. Such strings are rejected; secrets belong in the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, isSet := u.User.Password()
		return isSet
	}

	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
