package config

// Config represents the full recur configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Task store location
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Reminder behavior
	Reminders RemindersConfig `yaml:"reminders" mapstructure:"reminders"`

	// Defaults applied when flags are omitted
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
}

// StoreConfig locates the task snapshot file
type StoreConfig struct {
	// Path to the YAML task file; empty means ~/.recur/tasks.yaml
	Path string `yaml:"path" mapstructure:"path"`
}

// RemindersConfig configures the reminder dispatcher
type RemindersConfig struct {
	// Look-ahead window in minutes for 'recur remind'
	WindowMinutes int `yaml:"window_minutes" mapstructure:"window_minutes"`

	// How long delivered notifications are kept in the history file
	RetentionDays int `yaml:"retention_days" mapstructure:"retention_days"`
}

// DefaultsConfig holds fallback values for task creation
type DefaultsConfig struct {
	Priority string `yaml:"priority" mapstructure:"priority"`
}
