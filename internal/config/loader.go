package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads and merges configuration from global and project sources
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults if no home dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, nil // Return defaults if no cwd
	}

	// Load global config first
	globalPath := filepath.Join(home, ".recur", "config.yaml")
	if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
		// Keep defaults for the unreadable file and continue
	}

	// Load project config (overrides global)
	projectPath := filepath.Join(cwd, ".recur", "config.yaml")
	if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
		// Keep going with what we have
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// StorePath resolves the task file location: the configured path if set,
// otherwise ~/.recur/tasks.yaml.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recur", "tasks.yaml")
}

// ReminderWindow returns the configured look-ahead as a duration.
func (c *Config) ReminderWindow() time.Duration {
	if c.Reminders.WindowMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Reminders.WindowMinutes) * time.Minute
}

// Retention returns how long notification history is kept.
func (c *Config) Retention() time.Duration {
	if c.Reminders.RetentionDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(c.Reminders.RetentionDays) * 24 * time.Hour
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recur", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".recur", "config.yaml")
}

// NotificationsPath returns the path to the notification history file
func NotificationsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recur", "notifications.yaml")
}
