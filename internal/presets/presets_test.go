package presets

import (
	"testing"
	"time"

	"github.com/jyang234/recur/internal/todo"
)

func TestCategoriesSorted(t *testing.T) {
	names := Categories()
	if len(names) == 0 {
		t.Fatal("Expected at least one category")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("Expected sorted names, got %v", names)
		}
	}
}

func TestTemplatesUnknownCategory(t *testing.T) {
	if _, err := Templates("nope"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestApplySeedsStore(t *testing.T) {
	store := todo.NewStore()
	base, _ := time.Parse(time.RFC3339, "2026-02-01T08:00:00Z")

	created, err := Apply(store, "finance", base)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(created) == 0 {
		t.Fatal("Expected seeded tasks")
	}
	if store.Len() != len(created) {
		t.Errorf("Expected %d tasks in store, got %d", len(created), store.Len())
	}

	for _, task := range created {
		if task.Status != todo.StatusPending {
			t.Errorf("Expected %q pending, got %q", task.Title, task.Status)
		}
		// Recurring seeds must satisfy the recurrence/due-date coupling
		if task.RecurrencePattern != todo.PatternNone && task.DueDate == nil {
			t.Errorf("Expected %q to have a due date", task.Title)
		}
		if task.DueDate != nil && !task.DueDate.After(base) {
			t.Errorf("Expected %q due after base, got %v", task.Title, task.DueDate)
		}
	}
}

func TestApplyAllCategoriesValid(t *testing.T) {
	base, _ := time.Parse(time.RFC3339, "2026-02-01T08:00:00Z")

	// Every shipped template must pass store validation
	for _, name := range Categories() {
		store := todo.NewStore()
		if _, err := Apply(store, name, base); err != nil {
			t.Errorf("Category %q failed to seed: %v", name, err)
		}
	}
}

func TestApplyCaseInsensitiveCategory(t *testing.T) {
	store := todo.NewStore()
	base, _ := time.Parse(time.RFC3339, "2026-02-01T08:00:00Z")

	if _, err := Apply(store, "Fitness", base); err != nil {
		t.Errorf("Expected case-insensitive category lookup, got error: %v", err)
	}
}
