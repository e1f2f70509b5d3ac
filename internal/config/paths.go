package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultDataDir is the subdirectory within the user's home directory.
const defaultDataDir = ".config/titleguard"

// DefaultDatabaseFile is used when database.path is empty.
const DefaultDatabaseFile = "titleguard.db"

// ResolveDatabasePath turns database.path into a concrete SQLite path.
// Absolute paths and ":memory:" are used directly. Anything else is treated
// as a filename within ~/.config/titleguard/, which is created if missing.
func ResolveDatabasePath(configured string) (string, error) {
	if configured == ":memory:" || filepath.IsAbs(configured) {
		return configured, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	filename := configured
	if filename == "" {
		filename = DefaultDatabaseFile
	}
	finalPath := filepath.Join(homeDir, defaultDataDir, filename)
	if err := os.MkdirAll(filepath.Dir(finalPath), 0750); err != nil {
		return "", fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(finalPath), err)
	}
	return finalPath, nil
}
