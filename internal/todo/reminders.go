package todo

import (
	"sort"
	"time"
)

// DefaultReminderWindow is the look-ahead used when callers don't override
// the window.
const DefaultReminderWindow = 30 * time.Minute

// CheckReminders returns the open (pending or in-progress) tasks whose due
// date falls within [now, now+window], both ends inclusive, sorted ascending
// by due date. Tasks without a due date never qualify. This is a pull-based
// check: there is no timer here, callers invoke it on their own schedule.
func CheckReminders(tasks []Task, now time.Time, window time.Duration) []Task {
	deadline := now.Add(window)

	due := make([]Task, 0)
	for _, t := range tasks {
		if !t.Open() || t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(now) || t.DueDate.After(deadline) {
			continue
		}
		due = append(due, t)
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(*due[j].DueDate)
	})
	return due
}
