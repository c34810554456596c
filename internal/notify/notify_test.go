package notify

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jyang234/recur/internal/todo"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %q: %v", value, err)
	}
	return parsed
}

func TestRunDeliversDueReminders(t *testing.T) {
	now := mustParse(t, "2026-02-01T12:00:00Z")
	in10 := now.Add(10 * time.Minute)
	in50 := now.Add(50 * time.Minute)

	tasks := []todo.Task{
		{ID: 1, Title: "Standup", Status: todo.StatusPending, DueDate: &in10},
		{ID: 2, Title: "Lunch", Status: todo.StatusPending, DueDate: &in50},
		{ID: 3, Title: "Done already", Status: todo.StatusCompleted, DueDate: &in10},
	}

	var out bytes.Buffer
	d := &Dispatcher{
		Out:         &out,
		HistoryPath: filepath.Join(t.TempDir(), "notifications.yaml"),
	}

	got, err := d.Run(tasks, now)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(got))
	}

	n := got[0]
	if n.TaskID != 1 {
		t.Errorf("Expected task 1, got %d", n.TaskID)
	}
	if n.ID == "" {
		t.Error("Expected a notification ID")
	}
	if !strings.Contains(n.Message, "Standup") {
		t.Errorf("Expected message to mention the task, got %q", n.Message)
	}
	if !strings.Contains(out.String(), "REMINDER [#1]") {
		t.Errorf("Expected delivery line on the writer, got %q", out.String())
	}
}

func TestRunNoMatchesIsQuiet(t *testing.T) {
	now := mustParse(t, "2026-02-01T12:00:00Z")

	var out bytes.Buffer
	d := &Dispatcher{Out: &out}

	got, err := d.Run(nil, now)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no notifications, got %d", len(got))
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRunAppendsHistory(t *testing.T) {
	now := mustParse(t, "2026-02-01T12:00:00Z")
	soon := now.Add(5 * time.Minute)
	path := filepath.Join(t.TempDir(), "notifications.yaml")

	tasks := []todo.Task{{ID: 1, Title: "First", Status: todo.StatusPending, DueDate: &soon}}
	d := &Dispatcher{HistoryPath: path}

	if _, err := d.Run(tasks, now); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	later := now.Add(time.Hour)
	laterDue := later.Add(5 * time.Minute)
	tasks = []todo.Task{{ID: 2, Title: "Second", Status: todo.StatusPending, DueDate: &laterDue}}
	if _, err := d.Run(tasks, later); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	history, err := History(path)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}
	if history[0].TaskID != 1 || history[1].TaskID != 2 {
		t.Errorf("Expected entries in delivery order, got %v", history)
	}
}

func TestRunPrunesOldHistory(t *testing.T) {
	now := mustParse(t, "2026-02-01T12:00:00Z")
	soon := now.Add(5 * time.Minute)
	path := filepath.Join(t.TempDir(), "notifications.yaml")

	d := &Dispatcher{HistoryPath: path, Retention: 24 * time.Hour}

	tasks := []todo.Task{{ID: 1, Title: "Old", Status: todo.StatusPending, DueDate: &soon}}
	if _, err := d.Run(tasks, now); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Two days later the first entry is past retention
	later := now.Add(48 * time.Hour)
	laterDue := later.Add(5 * time.Minute)
	tasks = []todo.Task{{ID: 2, Title: "New", Status: todo.StatusPending, DueDate: &laterDue}}
	if _, err := d.Run(tasks, later); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	history, err := History(path)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected pruned history with 1 entry, got %d", len(history))
	}
	if history[0].TaskID != 2 {
		t.Errorf("Expected only the new entry, got task %d", history[0].TaskID)
	}
}

func TestHistoryMissingFile(t *testing.T) {
	history, err := History(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(history))
	}
}

func TestFormatUntil(t *testing.T) {
	now := mustParse(t, "2026-02-01T12:00:00Z")

	if got := formatUntil(now, now.Add(10*time.Minute)); got != "10 min" {
		t.Errorf("Expected '10 min', got %q", got)
	}
	if got := formatUntil(now, now); got != "now" {
		t.Errorf("Expected 'now', got %q", got)
	}
}
