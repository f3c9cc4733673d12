package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is the per-user data directory for app, honouring XDG_DATA_HOME.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// StateDir is where log files go, honouring XDG_STATE_HOME.
func StateDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DataDir(app)
	}
	return filepath.Join(home, ".local", "state", app)
}
