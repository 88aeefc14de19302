package main

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/storage"
)

func TestLogDirFollowsConfigPath(t *testing.T) {
	dir := logDir("/tmp/elsewhere/vigor.db")
	if dir != "/tmp/elsewhere" {
		t.Errorf("expected log dir next to the database, got %s", dir)
	}
}

func TestLogDirForRemoteBackends(t *testing.T) {
	want := filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath))

	for _, config := range []string{"keyring", "postgres://host/vigor"} {
		if dir := logDir(config); dir != want {
			t.Errorf("logDir(%q) = %s, want %s", config, dir, want)
		}
	}
}
