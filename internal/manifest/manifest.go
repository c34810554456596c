// Package manifest persists a todo store as a YAML snapshot. It is the
// persistence collaborator for the core: the store itself knows nothing
// about files. The snapshot carries the next-ID counter so task IDs are
// never reused across restarts, even when the highest-ID task was deleted.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jyang234/recur/internal/todo"
)

// Version is the current snapshot schema version.
const Version = 1

// Snapshot is the on-disk representation of a store. Timestamps serialize
// as RFC 3339 and enums as their literal string values, so the file
// round-trips the wire format exactly.
type Snapshot struct {
	Version int         `yaml:"version"`
	NextID  int         `yaml:"next_id"`
	SavedAt time.Time   `yaml:"saved_at"`
	Tasks   []todo.Task `yaml:"tasks"`
}

// Load reads a snapshot and reconstructs the store. A missing file is not
// an error: it yields a fresh empty store, matching first-run behavior.
func Load(path string) (*todo.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return todo.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	nextID := snap.NextID
	if nextID < 1 {
		// Tolerate hand-edited files that dropped the counter
		for _, t := range snap.Tasks {
			if t.ID >= nextID {
				nextID = t.ID + 1
			}
		}
		if nextID < 1 {
			nextID = 1
		}
	}

	store, err := todo.Restore(snap.Tasks, nextID)
	if err != nil {
		return nil, fmt.Errorf("invalid task file: %w", err)
	}
	return store, nil
}

// Save writes the store's snapshot atomically via a temp file and rename,
// creating parent directories as needed.
func Save(path string, store *todo.Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create task directory: %w", err)
	}

	snap := Snapshot{
		Version: Version,
		NextID:  store.NextID(),
		SavedAt: time.Now(),
		Tasks:   store.Tasks(),
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename task file: %w", err)
	}
	return nil
}
