package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jyang234/recur/internal/config"
	"github.com/jyang234/recur/internal/manifest"
	"github.com/jyang234/recur/internal/todo"
)

// dueFormats are the accepted layouts for --due/--from/--to values, tried
// in order. Date-only values get midnight local time.
var dueFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// loadStore loads the effective config and the task store it points at.
func loadStore() (*config.Config, *todo.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := manifest.Load(cfg.StorePath())
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func saveStore(cfg *config.Config, store *todo.Store) error {
	return manifest.Save(cfg.StorePath(), store)
}

// parseID converts a positional task-ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// parseDue parses a user-supplied timestamp in any accepted layout.
func parseDue(value string) (time.Time, error) {
	for _, layout := range dueFormats {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", value)
}

// taskLine renders a task as one summary line for listings.
func taskLine(t todo.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %-12s %-7s %s", t.ID, "["+t.Status+"]", t.Priority, t.Title)
	if t.DueDate != nil {
		fmt.Fprintf(&b, "  (due %s)", t.DueDate.Format("2006-01-02 15:04"))
	}
	if t.RecurrencePattern != todo.PatternNone {
		fmt.Fprintf(&b, "  [%s]", t.RecurrencePattern)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "  tags: %s", strings.Join(t.Tags, ","))
	}
	return b.String()
}

// printTasks prints a listing with a count header. Verbose mode adds
// descriptions underneath each line.
func printTasks(tasks []todo.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Printf("Tasks (%d):\n", len(tasks))
	for _, t := range tasks {
		fmt.Println(" " + taskLine(t))
		if verbose && t.Description != "" {
			fmt.Printf("       %s\n", t.Description)
		}
	}
}

// printTaskDetail prints the full record of one task.
func printTaskDetail(t todo.Task) {
	fmt.Printf("Task #%d\n", t.ID)
	fmt.Printf("  Title:       %s\n", t.Title)
	if t.Description != "" {
		fmt.Printf("  Description: %s\n", t.Description)
	}
	fmt.Printf("  Status:      %s\n", t.Status)
	fmt.Printf("  Priority:    %s\n", t.Priority)
	if len(t.Tags) > 0 {
		fmt.Printf("  Tags:        %s\n", strings.Join(t.Tags, ", "))
	}
	if t.DueDate != nil {
		fmt.Printf("  Due:         %s\n", t.DueDate.Format("2006-01-02 15:04"))
	}
	if t.RecurrencePattern != todo.PatternNone {
		fmt.Printf("  Repeats:     %s\n", t.RecurrencePattern)
	}
	if t.RecurrenceParentID != 0 {
		fmt.Printf("  Spawned by:  #%d\n", t.RecurrenceParentID)
	}
	fmt.Printf("  Created:     %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Updated:     %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))
}
