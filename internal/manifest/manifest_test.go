package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jyang234/recur/internal/todo"
)

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d tasks", store.Len())
	}
	if store.NextID() != 1 {
		t.Errorf("Expected next ID 1, got %d", store.NextID())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	store := todo.NewStore()
	due, _ := time.Parse(time.RFC3339, "2026-03-01T09:30:00Z")
	created, err := store.Create("Pay rent", todo.CreateOptions{
		Description: "First of the month",
		Priority:    todo.PriorityHigh,
		Tags:        []string{"finance", "bills"},
		DueDate:     &due,
		Recurrence:  todo.PatternMonthly,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := Save(path, store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Expected 1 task, got %d", loaded.Len())
	}

	got, ok := loaded.Get(created.ID)
	if !ok {
		t.Fatal("Expected to find the saved task")
	}
	if got.Title != "Pay rent" {
		t.Errorf("Expected title 'Pay rent', got %q", got.Title)
	}
	if got.Status != todo.StatusPending {
		t.Errorf("Expected status pending, got %q", got.Status)
	}
	if got.Priority != todo.PriorityHigh {
		t.Errorf("Expected priority high, got %q", got.Priority)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "finance" || got.Tags[1] != "bills" {
		t.Errorf("Expected tags preserved in order, got %v", got.Tags)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, got.DueDate)
	}
	if got.RecurrencePattern != todo.PatternMonthly {
		t.Errorf("Expected monthly pattern, got %q", got.RecurrencePattern)
	}
}

func TestLoadPreservesIDCounterAfterDeletion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	store := todo.NewStore()
	store.Create("First", todo.CreateOptions{})
	second, _ := store.Create("Second", todo.CreateOptions{})
	store.Delete(second.ID)

	if err := Save(path, store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	task, err := loaded.Create("Third", todo.CreateOptions{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("Expected ID 3 (no reuse of deleted ID 2), got %d", task.ID)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".recur", "nested", "tasks.yaml")

	if err := Save(path, todo.NewStore()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestSaveWritesLiteralEnumValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	store := todo.NewStore()
	due, _ := time.Parse(time.RFC3339, "2026-01-06T09:00:00Z")
	store.Create("Daily Standup", todo.CreateOptions{
		Priority:   todo.PriorityHigh,
		DueDate:    &due,
		Recurrence: todo.PatternDaily,
	})

	if err := Save(path, store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	content := string(data)

	for _, literal := range []string{"status: pending", "priority: high", "recurrence_pattern: daily", "next_id: 2"} {
		if !strings.Contains(content, literal) {
			t.Errorf("Expected file to contain %q, got:\n%s", literal, content)
		}
	}
}

func TestLoadToleratesMissingCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `version: 1
tasks:
  - id: 4
    title: Hand edited
    status: pending
    priority: medium
    created_at: 2026-01-01T00:00:00Z
    updated_at: 2026-01-01T00:00:00Z
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	task, err := loaded.Create("New", todo.CreateOptions{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID != 5 {
		t.Errorf("Expected ID 5 after max-ID fallback, got %d", task.ID)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
