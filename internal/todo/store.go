package todo

import (
	"fmt"
	"sort"
	"time"
)

// Store owns a collection of tasks. It is the only component that assigns
// IDs or mutates task state; everything else works on snapshots from Tasks.
// Not safe for concurrent use.
type Store struct {
	tasks  map[int]Task
	nextID int
	now    func() time.Time
}

// NewStore creates an empty store. The first task created gets ID 1.
func NewStore() *Store {
	return &Store{
		tasks:  make(map[int]Task),
		nextID: 1,
		now:    time.Now,
	}
}

// Restore reconstructs a store from a persisted snapshot. nextID must be
// greater than every task ID in the snapshot so that IDs are never reused,
// even when the highest-ID task was deleted before the snapshot was taken.
func Restore(tasks []Task, nextID int) (*Store, error) {
	if nextID < 1 {
		return nil, fmt.Errorf("next id must be positive, got %d", nextID)
	}
	s := NewStore()
	for _, t := range tasks {
		if t.ID >= nextID {
			return nil, fmt.Errorf("task id %d conflicts with next id %d", t.ID, nextID)
		}
		if _, dup := s.tasks[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		s.tasks[t.ID] = t
	}
	s.nextID = nextID
	return s, nil
}

// CreateOptions carries the optional fields for Create. The zero value is
// valid: empty description, medium priority, no tags, no due date, no
// recurrence.
type CreateOptions struct {
	Description string
	Priority    Priority
	Tags        []string
	DueDate     *time.Time
	Recurrence  Pattern
}

// Create validates the input, assigns the next sequential ID, and stores a
// new pending task. A recurrence pattern without a due date is rejected up
// front with ErrRecurrenceRequiresDueDate rather than failing later at
// completion time.
func (s *Store) Create(title string, opts CreateOptions) (Task, error) {
	if opts.Recurrence != PatternNone && opts.DueDate == nil {
		return Task{}, ErrRecurrenceRequiresDueDate
	}

	title, err := validateTitle(title)
	if err != nil {
		return Task{}, err
	}
	if err := validateDescription(opts.Description); err != nil {
		return Task{}, err
	}
	tags, err := NormalizeTags(opts.Tags)
	if err != nil {
		return Task{}, err
	}

	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := s.now()
	task := Task{
		ID:                s.nextID,
		Title:             title,
		Description:       opts.Description,
		Status:            StatusPending,
		Priority:          priority,
		Tags:              tags,
		DueDate:           copyTime(opts.DueDate),
		RecurrencePattern: opts.Recurrence,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.tasks[task.ID] = task
	s.nextID++
	return task, nil
}

// Get looks up a task by ID. An unknown ID is not an error.
func (s *Store) Get(id int) (Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

// TimeChange is a tagged option for updating a nullable timestamp field:
// leave it unchanged, set it to a value, or clear it. The zero value means
// unchanged, so callers only construct the cases they need.
type TimeChange struct {
	set   bool
	clear bool
	value time.Time
}

// SetTime returns a TimeChange that sets the field to t.
func SetTime(t time.Time) TimeChange { return TimeChange{set: true, value: t} }

// ClearTime returns a TimeChange that clears the field.
func ClearTime() TimeChange { return TimeChange{clear: true} }

// PatternChange is the tagged option for the recurrence pattern field,
// mirroring TimeChange.
type PatternChange struct {
	set   bool
	clear bool
	value Pattern
}

// SetPattern returns a PatternChange that sets the recurrence pattern.
func SetPattern(p Pattern) PatternChange { return PatternChange{set: true, value: p} }

// ClearPattern returns a PatternChange that removes the recurrence pattern.
func ClearPattern() PatternChange { return PatternChange{clear: true} }

// Update describes a partial update. Nil pointer fields are left unchanged.
// The nullable fields use tagged changes because nil already means
// "unchanged" and clearing is a distinct, deliberate operation.
type Update struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	Tags        *[]string
	DueDate     TimeChange
	Recurrence  PatternChange
}

// Update applies a partial update to the task with the given ID. Unsupplied
// fields keep their prior values; UpdatedAt is always refreshed. Returns
// ok=false for an unknown ID. Validation failures leave the stored task
// untouched.
//
// Status transitions are deliberately unrestricted — a completed task can be
// reopened. Setting status to completed here does NOT spawn a recurrence
// successor; only Complete does that.
func (s *Store) Update(id int, u Update) (Task, bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false, nil
	}

	if u.Title != nil {
		title, err := validateTitle(*u.Title)
		if err != nil {
			return Task{}, true, err
		}
		task.Title = title
	}
	if u.Description != nil {
		if err := validateDescription(*u.Description); err != nil {
			return Task{}, true, err
		}
		task.Description = *u.Description
	}
	if u.Status != nil {
		task.Status = *u.Status
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.Tags != nil {
		tags, err := NormalizeTags(*u.Tags)
		if err != nil {
			return Task{}, true, err
		}
		task.Tags = tags
	}
	switch {
	case u.DueDate.set:
		task.DueDate = copyTime(&u.DueDate.value)
	case u.DueDate.clear:
		task.DueDate = nil
	}
	switch {
	case u.Recurrence.set:
		task.RecurrencePattern = u.Recurrence.value
	case u.Recurrence.clear:
		task.RecurrencePattern = PatternNone
	}

	task.UpdatedAt = s.now()
	s.tasks[id] = task
	return task, true, nil
}

// Complete marks the task completed and, for a recurring task with a due
// date, spawns the next occurrence: same title, description, priority, and
// tags, the next due date per NextDueDate, a fresh ID, pending status, and
// RecurrenceParentID linking back to the completed task.
//
// Completing a task that is already completed returns it unchanged and
// never spawns, so calling Complete twice cannot duplicate occurrences.
func (s *Store) Complete(id int) (Task, *Task, bool) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, nil, false
	}
	if task.Status == StatusCompleted {
		return task, nil, true
	}

	now := s.now()
	task.Status = StatusCompleted
	task.UpdatedAt = now
	s.tasks[id] = task

	if !task.Recurring() {
		return task, nil, true
	}

	nextDue := NextDueDate(*task.DueDate, task.RecurrencePattern)
	next := Task{
		ID:                 s.nextID,
		Title:              task.Title,
		Description:        task.Description,
		Status:             StatusPending,
		Priority:           task.Priority,
		Tags:               append([]string(nil), task.Tags...),
		DueDate:            &nextDue,
		RecurrencePattern:  task.RecurrencePattern,
		RecurrenceParentID: task.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.tasks[next.ID] = next
	s.nextID++
	return task, &next, true
}

// Delete removes a task. Hard removal: recurrence links in either direction
// are left dangling and simply resolve to not-found on lookup.
func (s *Store) Delete(id int) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Tasks returns a snapshot copy of the collection, ordered by ID, for the
// query functions. Mutating the returned slice does not affect the store.
func (s *Store) Tasks() []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID exposes the ID counter so a persistence collaborator can carry the
// never-reuse invariant across restarts.
func (s *Store) NextID() int {
	return s.nextID
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
