// Package notify is the reminder dispatcher: it pulls soon-due tasks from a
// snapshot via the core reminder check, delivers them to a writer, and keeps
// a delivery history on disk. There is no background timer — 'recur remind'
// (or a cron job wrapping it) invokes the dispatcher on whatever schedule
// the user wants.
package notify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jyang234/recur/internal/todo"
)

// Notification records one delivered reminder.
type Notification struct {
	ID      string    `yaml:"id"`
	TaskID  int       `yaml:"task_id"`
	Title   string    `yaml:"title"`
	DueDate time.Time `yaml:"due_date"`
	Message string    `yaml:"message"`
	SentAt  time.Time `yaml:"sent_at"`
}

// Dispatcher delivers reminders and maintains the history file.
type Dispatcher struct {
	Out         io.Writer     // Where deliveries are printed
	HistoryPath string        // YAML history file; empty disables history
	Window      time.Duration // Look-ahead; zero means todo.DefaultReminderWindow
	Retention   time.Duration // History entries older than this are pruned
}

// Run checks the snapshot for tasks due within the window, prints one line
// per reminder, and appends the deliveries to the history file. It returns
// the notifications it delivered; an empty result is normal, not an error.
func (d *Dispatcher) Run(tasks []todo.Task, now time.Time) ([]Notification, error) {
	window := d.Window
	if window <= 0 {
		window = todo.DefaultReminderWindow
	}

	due := todo.CheckReminders(tasks, now, window)
	if len(due) == 0 {
		return nil, nil
	}

	notifications := make([]Notification, 0, len(due))
	for _, task := range due {
		n := Notification{
			ID:      uuid.New().String(),
			TaskID:  task.ID,
			Title:   task.Title,
			DueDate: *task.DueDate,
			Message: fmt.Sprintf("%q is due in %s", task.Title, formatUntil(now, *task.DueDate)),
			SentAt:  now,
		}
		notifications = append(notifications, n)

		if d.Out != nil {
			fmt.Fprintf(d.Out, "REMINDER [#%d] %s\n", task.ID, n.Message)
		}
	}

	if d.HistoryPath != "" {
		if err := d.appendHistory(notifications, now); err != nil {
			return notifications, fmt.Errorf("failed to record notifications: %w", err)
		}
	}
	return notifications, nil
}

// History reads the recorded notifications. A missing file yields an empty
// history.
func History(path string) ([]Notification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read notification history: %w", err)
	}

	var history []Notification
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse notification history: %w", err)
	}
	return history, nil
}

// appendHistory merges the new deliveries into the history file, pruning
// entries older than the retention window so the file cannot grow without
// bound.
func (d *Dispatcher) appendHistory(notifications []Notification, now time.Time) error {
	history, err := History(d.HistoryPath)
	if err != nil {
		return err
	}

	retention := d.Retention
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	cutoff := now.Add(-retention)

	kept := make([]Notification, 0, len(history)+len(notifications))
	for _, n := range history {
		if !n.SentAt.Before(cutoff) {
			kept = append(kept, n)
		}
	}
	kept = append(kept, notifications...)

	if err := os.MkdirAll(filepath.Dir(d.HistoryPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := yaml.Marshal(kept)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmpPath := d.HistoryPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmpPath, d.HistoryPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename history: %w", err)
	}
	return nil
}

// formatUntil renders the time remaining until due in friendly units.
func formatUntil(now, due time.Time) string {
	remaining := due.Sub(now).Round(time.Minute)
	if remaining <= 0 {
		return "now"
	}
	if remaining < time.Hour {
		return fmt.Sprintf("%d min", int(remaining.Minutes()))
	}
	return remaining.String()
}
