// Package todo implements the core task-tracking engine: the task entity
// and its validation rules, the in-memory store that owns task identity and
// the mutating lifecycle, the recurrence calculator, and the stateless
// query operations used for filtering, sorting, and reminder detection.
//
// # Ownership
//
// A Store is the sole owner and only writer of its task collection. Callers
// construct one store per logical owner (a CLI session, a test) and funnel
// every mutation through it; there is no ambient global store. Query
// functions (List, Match, Sort, CheckReminders, Stats) never mutate — they
// operate on snapshots obtained from Store.Tasks.
//
// # Identity
//
// IDs are positive integers assigned sequentially by the store and never
// reused, even after deletion. Restore reconstructs a store from a persisted
// snapshot and carries the next-ID counter forward so the invariant holds
// across process restarts.
//
// # Recurrence
//
// Completing a task that has both a recurrence pattern and a due date spawns
// a successor task: same title, description, priority, and tags, the next
// due date per NextDueDate, a fresh ID, pending status, and a
// recurrence_parent_id pointing at the completed task. Completing an
// already-completed task is a no-op and never spawns.
//
// # Concurrency
//
// Single-threaded by design. A Store has no internal locking; embedders
// that share a store across goroutines must serialize access themselves.
package todo
