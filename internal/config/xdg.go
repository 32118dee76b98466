package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "nowbar"
	dirPerm    = 0o755
	filePerm   = 0o644
)

// GetConfigDir returns the nowbar configuration directory, honoring
// XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDirectories creates the configuration directory if missing.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}
