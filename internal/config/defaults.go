package config

import "os"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Path: "", // Resolved to ~/.recur/tasks.yaml by StorePath
		},
		Reminders: RemindersConfig{
			WindowMinutes: 30,
			RetentionDays: 30,
		},
		Defaults: DefaultsConfig{
			Priority: "medium",
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# recur Global Configuration
version: "1"

# Task store location
store:
  path: ""  # Empty means ~/.recur/tasks.yaml

# Reminder behavior
reminders:
  # Look-ahead window for 'recur remind'
  window_minutes: 30
  # How long delivered notifications are kept
  retention_days: 30

# Defaults applied when flags are omitted
defaults:
  priority: medium
`
	return os.WriteFile(path, []byte(content), 0644)
}
