package todo

import (
	"sort"
	"strings"
	"time"
)

// ListFilter narrows a listing. Zero-valued fields are ignored; supplied
// fields are AND-combined. Tags use ALL semantics: the task must carry
// every listed tag.
type ListFilter struct {
	Status   Status
	Priority Priority
	Tags     []string
}

// List returns the tasks matching the filter, sorted ascending by creation
// time. No matches is an empty slice, never an error.
func List(tasks []Task, f ListFilter) []Task {
	return Match(tasks, Criteria{
		Status:   f.Status,
		Priority: f.Priority,
		Tags:     f.Tags,
	})
}

// Criteria is the full search surface: everything ListFilter offers plus
// case-insensitive keyword search over title and description and an
// inclusive creation-date range. All supplied criteria are AND-combined.
type Criteria struct {
	Keyword  string
	Status   Status
	Priority Priority
	Tags     []string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Match returns the tasks satisfying every supplied criterion, sorted
// ascending by creation time.
func Match(tasks []Task, c Criteria) []Task {
	keyword := strings.ToLower(c.Keyword)

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(t.Title), keyword) &&
			!strings.Contains(strings.ToLower(t.Description), keyword) {
			continue
		}
		if c.Status != "" && t.Status != c.Status {
			continue
		}
		if c.Priority != "" && t.Priority != c.Priority {
			continue
		}
		if !hasAllTags(t, c.Tags) {
			continue
		}
		if c.DateFrom != nil && t.CreatedAt.Before(*c.DateFrom) {
			continue
		}
		if c.DateTo != nil && t.CreatedAt.After(*c.DateTo) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func hasAllTags(t Task, tags []string) bool {
	for _, tag := range tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}

// SortField selects the key for Sort.
type SortField string

const (
	SortByPriority  SortField = "priority"
	SortByDueDate   SortField = "due_date"
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
)

// SortOrder selects the direction for Sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Sort returns a copy of tasks ordered by the given field. Priority sorts
// most urgent first when ascending; title is case-insensitive. Tasks with
// no due date always sort after tasks with one, whatever the requested
// order — a fixed policy. An unknown field degrades to created_at ascending
// rather than erroring.
func Sort(tasks []Task, field SortField, order SortOrder) []Task {
	if field == SortByDueDate {
		return sortByDueDate(tasks, order)
	}

	out := append([]Task(nil), tasks...)
	var less func(a, b Task) bool
	switch field {
	case SortByPriority:
		less = func(a, b Task) bool { return a.Priority.rank() < b.Priority.rank() }
	case SortByTitle:
		less = func(a, b Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default: // created_at, and the permissive fallback for unknown fields
		less = func(a, b Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if order == OrderDesc {
		reverse(out)
	}
	return out
}

// sortByDueDate keeps undated tasks at the end regardless of direction:
// only the dated prefix is reversed for descending order.
func sortByDueDate(tasks []Task, order SortOrder) []Task {
	dated := make([]Task, 0, len(tasks))
	undated := make([]Task, 0)
	for _, t := range tasks {
		if t.DueDate != nil {
			dated = append(dated, t)
		} else {
			undated = append(undated, t)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].DueDate.Before(*dated[j].DueDate)
	})
	if order == OrderDesc {
		reverse(dated)
	}
	return append(dated, undated...)
}

func reverse(tasks []Task) {
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
}
