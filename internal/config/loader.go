package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment variables: NOWBAR_PANEL_CORNER_MARGIN, NOWBAR_LOGGING_LEVEL, ...
	v.SetEnvPrefix("NOWBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorthand bindings matching the logging package env vars
	if err := v.BindEnv("logging.level", "NOWBAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind NOWBAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "NOWBAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind NOWBAR_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// setDefaults seeds viper with the default values so partial config files
// work.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("panel.corner_margin", defaults.Panel.CornerMargin)
	m.viper.SetDefault("panel.projection_factor", defaults.Panel.ProjectionFactor)
	m.viper.SetDefault("panel.edge_hidden_visible_width", defaults.Panel.EdgeHiddenVisibleWidth)
	m.viper.SetDefault("panel.snap_to_corners", defaults.Panel.SnapToCorners)
	m.viper.SetDefault("panel.scroll_sensitivity", defaults.Panel.ScrollSensitivity)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig writes the default config file and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.toml")

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		// Another process may have raced us; a present file is fine.
		if _, statErr := os.Stat(configFile); statErr != nil {
			return err
		}
	}

	if err := GenerateSchemaFile(); err != nil {
		// Schema generation is best-effort; the config itself is usable.
		return nil
	}
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
