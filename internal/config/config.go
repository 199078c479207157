// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "todo-tui"

// Config represents the application configuration.
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	UI            UIConfig            `yaml:"ui"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
}

// StorageConfig holds task file settings.
type StorageConfig struct {
	// File is the task file path. Empty means tasks.json in the data directory.
	File string `yaml:"file"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	DescriptionWidth int `yaml:"description_width"`
	DueDateWidth     int `yaml:"due_date_width"`
	ListHeight       int `yaml:"list_height"`
}

// NotificationsConfig controls desktop reminders for overdue tasks.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DescriptionWidth: 30,
			DueDateWidth:     15,
			ListHeight:       15,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir returns the directory holding the task file and log.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/todo-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path, filling unset values with defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize replaces non-positive sizes with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UI.DescriptionWidth <= 0 {
		c.UI.DescriptionWidth = def.UI.DescriptionWidth
	}
	if c.UI.DueDateWidth <= 0 {
		c.UI.DueDateWidth = def.UI.DueDateWidth
	}
	if c.UI.ListHeight <= 0 {
		c.UI.ListHeight = def.UI.ListHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// TaskFile returns the configured task file, or tasks.json in the data directory.
func (c *Config) TaskFile() (string, error) {
	if c.Storage.File != "" {
		return expandHome(c.Storage.File)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasks.json"), nil
}

// LogFile returns the configured log file, or todo-tui.log in the data directory.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return expandHome(c.Log.File)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
