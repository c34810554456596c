package todo

import (
	"testing"
	"time"
)

func TestCheckRemindersWindowBoundaries(t *testing.T) {
	now := ts("2026-02-01T12:00:00Z")

	atNow := now
	atEdge := now.Add(30 * time.Minute)
	pastEdge := now.Add(31 * time.Minute)
	behind := now.Add(-time.Minute)

	tasks := []Task{
		{ID: 1, Title: "Due right now", Status: StatusPending, DueDate: &atNow},
		{ID: 2, Title: "Due at the edge", Status: StatusPending, DueDate: &atEdge},
		{ID: 3, Title: "Just outside", Status: StatusPending, DueDate: &pastEdge},
		{ID: 4, Title: "Already past", Status: StatusPending, DueDate: &behind},
	}

	got := CheckReminders(tasks, now, DefaultReminderWindow)
	if len(got) != 2 {
		t.Fatalf("Expected 2 reminders, got %d", len(got))
	}
	// Both inclusive boundaries, sorted ascending by due date
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("Expected tasks 1 and 2 in due-date order, got %v", got)
	}
}

func TestCheckRemindersSkipsClosedAndUndated(t *testing.T) {
	now := ts("2026-02-01T12:00:00Z")
	soon := now.Add(10 * time.Minute)

	tasks := []Task{
		{ID: 1, Title: "Completed", Status: StatusCompleted, DueDate: &soon},
		{ID: 2, Title: "No due date", Status: StatusPending},
		{ID: 3, Title: "In progress", Status: StatusInProgress, DueDate: &soon},
	}

	got := CheckReminders(tasks, now, DefaultReminderWindow)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Expected only the open dated task, got %v", got)
	}
}

func TestCheckRemindersCustomWindow(t *testing.T) {
	now := ts("2026-02-01T12:00:00Z")
	in45 := now.Add(45 * time.Minute)

	tasks := []Task{{ID: 1, Title: "Later", Status: StatusPending, DueDate: &in45}}

	if got := CheckReminders(tasks, now, 30*time.Minute); len(got) != 0 {
		t.Errorf("Expected no reminders inside 30m, got %d", len(got))
	}
	if got := CheckReminders(tasks, now, time.Hour); len(got) != 1 {
		t.Errorf("Expected 1 reminder inside 60m, got %d", len(got))
	}
}

func TestCheckRemindersEmpty(t *testing.T) {
	got := CheckReminders(nil, ts("2026-02-01T12:00:00Z"), DefaultReminderWindow)
	if len(got) != 0 {
		t.Errorf("Expected empty result, got %d", len(got))
	}
}
